package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// ReportPrefix is the object key prefix for uploaded CSV reports.
const ReportPrefix = "reports/"

// ContextSessionKey is the gin context key holding *SessionClaims.
const ContextSessionKey = "session"
