package notification

import (
	"context"
	"errors"
	"time"

	"NotificationHub/internal/auth"
	"NotificationHub/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service orchestrates notification dispatch and record CRUD. It is
// stateless and reentrant; the store is the only shared resource.
type Service struct {
	store    Store
	selector *Selector
	log      *zap.Logger
}

func NewService(store Store, selector *Selector, log *zap.Logger) *Service {
	return &Service{store: store, selector: selector, log: log}
}

// Dispatch runs the full flow: validate, authorize, normalize, select and
// send, persist, respond. Errors classified by the first three steps keep
// their taxonomy kind; everything after surfaces as internal.
//
// The persisted status is the literal Sent, not the status reported by the
// strategy. That mirrors the documented behavior of the stub channels; a
// real transport would have to thread the strategy outcome through here
// and add a Failed path.
func (s *Service) Dispatch(ctx context.Context, caller *auth.JWTClaims, req *SendRequest) (*DispatchResponse, error) {
	if err := validateSendRequest(req); err != nil {
		metrics.DispatchRejectedTotal.WithLabelValues("bad_request").Inc()
		return nil, err
	}

	sender, err := Authorize(req.Type, caller)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			metrics.DispatchRejectedTotal.WithLabelValues("forbidden").Inc()
		} else {
			metrics.DispatchRejectedTotal.WithLabelValues("bad_request").Inc()
		}
		return nil, err
	}

	recipients, err := NormalizeRecipients(req.Type, req.Recipients)
	if err != nil {
		metrics.DispatchRejectedTotal.WithLabelValues("bad_request").Inc()
		return nil, err
	}

	strategy, err := s.selector.Select(req.Type)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := strategy.Send(sender, recipients, req.Content, Extra{Subject: req.Subject, Title: req.Title})
	metrics.DispatchSeconds.Observe(time.Since(start).Seconds())

	record := &Notification{
		Type:       req.Type,
		Content:    req.Content,
		Recipients: recipients,
		Status:     StatusSent,
	}
	switch req.Type {
	case TypeEmail:
		record.Subject = req.Subject
	case TypePush:
		record.Title = req.Title
	}

	if err := s.store.Insert(ctx, record); err != nil {
		return nil, err
	}

	metrics.DispatchedTotal.WithLabelValues(string(req.Type)).Inc()
	s.log.Info("notification dispatched",
		zap.String("type", string(req.Type)),
		zap.String("id", record.ID.Hex()),
		zap.Int("recipients", len(recipients)),
	)

	return &DispatchResponse{
		// cases.Caser is stateful, so build one per call.
		Message: cases.Title(language.English).String(string(req.Type)) + " notification sent successfully",
		Result:  result,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Notification, error) {
	return s.store.FindByID(ctx, id)
}

// Update replaces a record's document after validating the replacement.
// There is no ownership field on records, so any authenticated caller may
// update any record.
func (s *Service) Update(ctx context.Context, id string, n *Notification) (*Notification, error) {
	if err := validateRecord(n); err != nil {
		return nil, err
	}
	return s.store.Replace(ctx, id, n)
}

func (s *Service) Delete(ctx context.Context, id string) (*Notification, error) {
	return s.store.Delete(ctx, id)
}
