package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/config"
	"factor_quiz_backend/internal/model"
	"factor_quiz_backend/internal/report"
	"factor_quiz_backend/internal/repository"
	"factor_quiz_backend/internal/scoring"
	"factor_quiz_backend/internal/util"
	"factor_quiz_backend/pkg/logger"
	"factor_quiz_backend/pkg/monitoring"
	"factor_quiz_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type StartSessionRequest struct {
	Locale string  `json:"locale"`
	Limit  *int    `json:"limit"`
	Seed   *uint64 `json:"seed"`
	Blend  *bool   `json:"blend"`
}

type SubmitAnswerRequest struct {
	Value int `json:"value" binding:"required"`
}

type SubmitAnswersRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type SetBlendRequest struct {
	Blend *bool `json:"blend" binding:"required"`
}

// ScoreRequest scores a caller-supplied working set without a session.
type ScoreRequest struct {
	Questions []string       `json:"questions" binding:"required"`
	Answers   map[string]int `json:"answers"`
	Locale    string         `json:"locale"`
	Blend     *bool          `json:"blend"`
}

// QuizService owns quiz sessions and runs the scoring engine over them.
// Scores are recomputed from the stored answers on every read.
type QuizService struct {
	Store   repository.SessionStore
	Bank    *bank.Bank
	Storage *StorageService

	jwtSecret  string
	sessionTTL time.Duration

	mu   sync.RWMutex
	quiz config.QuizConfig

	now func() time.Time
}

func NewQuizService(store repository.SessionStore, b *bank.Bank, storage *StorageService, cfg *config.Config) *QuizService {
	return &QuizService{
		Store:      store,
		Bank:       b,
		Storage:    storage,
		jwtSecret:  cfg.JWT.Secret,
		sessionTTL: cfg.Quiz.SessionTTL(),
		quiz:       cfg.Quiz,
		now:        time.Now,
	}
}

// UpdateConfig applies the reloadable quiz settings. The session TTL and
// store stay fixed for the life of the process.
func (s *QuizService) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz.DefaultLocale = cfg.Quiz.DefaultLocale
	s.quiz.QuestionLimit = cfg.Quiz.QuestionLimit
	s.quiz.BlendByDefault = cfg.Quiz.BlendByDefault
}

func (s *QuizService) settings() config.QuizConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quiz
}

// ResolveLocale maps an empty request locale to the configured default.
func (s *QuizService) ResolveLocale(raw string) (bank.Locale, error) {
	if raw == "" {
		raw = s.settings().DefaultLocale
	}
	l, err := bank.ParseLocale(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrInvalidLocale, err)
	}
	return l, nil
}

// Catalog lists the whole question bank for a locale.
func (s *QuizService) Catalog(rawLocale string) ([]model.QuestionView, error) {
	locale, err := s.ResolveLocale(rawLocale)
	if err != nil {
		return nil, err
	}
	return questionViews(s.Bank.Questions(locale), nil), nil
}

func (s *QuizService) StartSession(ctx context.Context, req StartSessionRequest) (*model.StartedSession, error) {
	_, span := tracing.Tracer.Start(ctx, "QuizService.StartSession")
	defer span.End()

	settings := s.settings()
	locale, err := s.ResolveLocale(req.Locale)
	if err != nil {
		return nil, err
	}

	limit := settings.QuestionLimit
	if req.Limit != nil {
		if *req.Limit < 0 {
			return nil, fmt.Errorf("%w: limit must not be negative", util.ErrInvalidRequest)
		}
		limit = *req.Limit
	}
	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}
	blend := settings.BlendByDefault
	if req.Blend != nil {
		blend = *req.Blend
	}

	entries := s.Bank.Select(limit, seed)
	session := model.NewQuizSession(string(locale), bank.IDs(entries), seed, blend, s.now(), s.sessionTTL)
	if err := s.Store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := util.GenerateSessionToken(session.ID, session.Locale, s.jwtSecret, s.sessionTTL)
	if err != nil {
		s.Store.Delete(ctx, session.ID)
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	monitoring.SessionsStarted.WithLabelValues(session.Locale).Inc()
	span.SetAttributes(attribute.String("quiz.session_id", session.ID), attribute.Int("quiz.questions", len(entries)))
	logger.Log.Info("Quiz session started",
		zap.String("sessionId", session.ID),
		zap.String("locale", session.Locale),
		zap.Int("questions", len(entries)),
		zap.Uint64("seed", seed),
	)

	questions, err := s.sessionQuestions(session)
	if err != nil {
		return nil, err
	}
	return &model.StartedSession{
		SessionQuestions: *questions,
		Token:            token,
		Blend:            session.Blend,
		ExpiresAt:        session.ExpiresAt,
	}, nil
}

func (s *QuizService) ListQuestions(ctx context.Context, id string) (*model.SessionQuestions, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.sessionQuestions(session)
}

// SubmitAnswer records or overwrites one answer.
func (s *QuizService) SubmitAnswer(ctx context.Context, id, questionID string, value int) (*model.AnswerProgress, error) {
	session, err := s.Store.Update(ctx, id, func(qs *model.QuizSession) error {
		if err := checkAnswer(qs, questionID, value); err != nil {
			return err
		}
		qs.Answers[questionID] = value
		qs.Touch(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.AnswersRecorded.Inc()
	logger.Log.Debug("Answer recorded",
		zap.String("sessionId", id),
		zap.String("questionId", questionID),
		zap.Int("value", value),
	)
	return progress(session), nil
}

// SubmitAnswers records a batch. Nothing is stored unless every answer is valid.
func (s *QuizService) SubmitAnswers(ctx context.Context, id string, answers map[string]int) (*model.AnswerProgress, error) {
	session, err := s.Store.Update(ctx, id, func(qs *model.QuizSession) error {
		for qid, v := range answers {
			if err := checkAnswer(qs, qid, v); err != nil {
				return err
			}
		}
		for qid, v := range answers {
			qs.Answers[qid] = v
		}
		qs.Touch(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.AnswersRecorded.Add(float64(len(answers)))
	logger.Log.Debug("Answers recorded", zap.String("sessionId", id), zap.Int("count", len(answers)))
	return progress(session), nil
}

// ClearAnswer makes a question unanswered again.
func (s *QuizService) ClearAnswer(ctx context.Context, id, questionID string) (*model.AnswerProgress, error) {
	session, err := s.Store.Update(ctx, id, func(qs *model.QuizSession) error {
		if !qs.HasQuestion(questionID) {
			return fmt.Errorf("%w: %q", scoring.ErrUnknownQuestion, questionID)
		}
		delete(qs.Answers, questionID)
		qs.Touch(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress(session), nil
}

// ResetSession clears every answer but keeps the working set.
func (s *QuizService) ResetSession(ctx context.Context, id string) (*model.AnswerProgress, error) {
	session, err := s.Store.Update(ctx, id, func(qs *model.QuizSession) error {
		qs.Answers = make(map[string]int)
		qs.Touch(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Quiz session reset", zap.String("sessionId", id))
	return progress(session), nil
}

func (s *QuizService) SetBlend(ctx context.Context, id string, blend bool) (*model.QuizResult, error) {
	session, err := s.Store.Update(ctx, id, func(qs *model.QuizSession) error {
		qs.Blend = blend
		qs.Touch(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	_, res, err := s.evaluate(ctx, session)
	if err != nil {
		return nil, err
	}
	return model.NewQuizResult(session.ID, res, session.Blend), nil
}

// GetResult scores the stored answers. A non-nil blend overrides the
// session's toggle for this call only.
func (s *QuizService) GetResult(ctx context.Context, id string, blend *bool) (*model.QuizResult, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	_, res, err := s.evaluate(ctx, session)
	if err != nil {
		return nil, err
	}
	active := session.Blend
	if blend != nil {
		active = *blend
	}
	return model.NewQuizResult(session.ID, res, active), nil
}

type renderedReport struct {
	name     string
	typeCode string
	data     []byte
}

// RenderReport builds the CSV report for a session without storing it.
func (s *QuizService) RenderReport(ctx context.Context, id string) (string, []byte, error) {
	r, err := s.render(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return r.name, r.data, nil
}

func (s *QuizService) render(ctx context.Context, id string) (*renderedReport, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, res, err := s.evaluate(ctx, session)
	if err != nil {
		return nil, err
	}

	r := report.Build(questions, session.Answers, res, bank.Locale(session.Locale))
	var buf bytes.Buffer
	if err := report.Write(&buf, r); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrExportFailed, err)
	}
	return &renderedReport{
		name:     report.Filename(res.Type.Code, s.now()),
		typeCode: res.Type.Code,
		data:     buf.Bytes(),
	}, nil
}

// ExportReport renders the report and uploads it. A failed upload leaves the
// session as it was.
func (s *QuizService) ExportReport(ctx context.Context, id string) (*model.ReportExport, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.ExportReport")
	defer span.End()

	rendered, err := s.render(ctx, id)
	if err != nil {
		if errors.Is(err, util.ErrExportFailed) {
			monitoring.ReportExports.WithLabelValues(s.Storage.Name(), "failed").Inc()
		}
		return nil, err
	}

	key := util.ReportPrefix + id + "/" + rendered.name
	url, err := s.Storage.Upload(ctx, key, bytes.NewReader(rendered.data), int64(len(rendered.data)), report.ContentType)
	if err != nil {
		monitoring.ReportExports.WithLabelValues(s.Storage.Name(), "failed").Inc()
		span.RecordError(err)
		logger.Log.Error("Report upload failed",
			zap.String("sessionId", id),
			zap.String("storage", s.Storage.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", util.ErrExportFailed, err)
	}

	monitoring.ReportExports.WithLabelValues(s.Storage.Name(), "ok").Inc()
	logger.Log.Info("Report exported",
		zap.String("sessionId", id),
		zap.String("file", key),
		zap.Int("bytes", len(rendered.data)),
	)

	return &model.ReportExport{
		SessionID: id,
		TypeCode:  rendered.typeCode,
		FileName:  rendered.name,
		URL:       url,
		Size:      len(rendered.data),
	}, nil
}

// Score runs the engine over an explicit working set of bank ids.
func (s *QuizService) Score(req ScoreRequest) (*model.QuizResult, error) {
	locale, err := s.ResolveLocale(req.Locale)
	if err != nil {
		return nil, err
	}
	questions, err := s.Bank.Resolve(req.Questions, locale)
	if err != nil {
		return nil, err
	}
	answers := scoring.Answers(req.Answers)
	if err := scoring.Validate(questions, answers); err != nil {
		return nil, err
	}

	res := scoring.Evaluate(questions, answers)
	monitoring.ResultsComputed.WithLabelValues(res.Type.Code).Inc()

	blend := s.settings().BlendByDefault
	if req.Blend != nil {
		blend = *req.Blend
	}
	return model.NewQuizResult("", res, blend), nil
}

func (s *QuizService) evaluate(ctx context.Context, session *model.QuizSession) ([]scoring.Question, scoring.Result, error) {
	_, span := tracing.Tracer.Start(ctx, "scoring.Evaluate")
	defer span.End()

	questions, err := s.Bank.Resolve(session.QuestionIDs, bank.Locale(session.Locale))
	if err != nil {
		return nil, scoring.Result{}, err
	}
	res := scoring.Evaluate(questions, scoring.Answers(session.Answers))

	monitoring.ResultsComputed.WithLabelValues(res.Type.Code).Inc()
	span.SetAttributes(
		attribute.String("quiz.type", res.Type.Code),
		attribute.Int("quiz.answered", res.Answered),
	)
	return questions, res, nil
}

func (s *QuizService) sessionQuestions(session *model.QuizSession) (*model.SessionQuestions, error) {
	locale := bank.Locale(session.Locale)
	questions, err := s.Bank.Resolve(session.QuestionIDs, locale)
	if err != nil {
		return nil, err
	}
	p := progress(session)
	return &model.SessionQuestions{
		SessionID: session.ID,
		Locale:    session.Locale,
		Questions: questionViews(questions, session.Answers),
		Options:   bank.Options(locale),
		Answered:  p.Answered,
		Total:     p.Total,
	}, nil
}

func checkAnswer(qs *model.QuizSession, questionID string, value int) error {
	if !qs.HasQuestion(questionID) {
		return fmt.Errorf("%w: %q", scoring.ErrUnknownQuestion, questionID)
	}
	if err := scoring.ValidateAnswer(value); err != nil {
		return fmt.Errorf("question %q: %w", questionID, err)
	}
	return nil
}

func progress(session *model.QuizSession) *model.AnswerProgress {
	answered := 0
	for _, id := range session.QuestionIDs {
		if _, ok := session.Answers[id]; ok {
			answered++
		}
	}
	return &model.AnswerProgress{
		SessionID: session.ID,
		Answered:  answered,
		Total:     len(session.QuestionIDs),
	}
}

func questionViews(questions []scoring.Question, answers map[string]int) []model.QuestionView {
	views := make([]model.QuestionView, len(questions))
	for i, q := range questions {
		family := ""
		if a, ok := scoring.LookupAxis(q.Axis); ok {
			family = a.Family().String()
		}
		views[i] = model.QuestionView{
			Index:  i + 1,
			ID:     q.ID,
			Axis:   q.Axis,
			Family: family,
			Text:   q.Text,
		}
		if v, ok := answers[q.ID]; ok {
			v := v
			views[i].Answer = &v
		}
	}
	return views
}
