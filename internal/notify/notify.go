// Package notify delivers best-effort player emails off the request path.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/config"
	"github.com/GlebRadaev/gearxp/pkg/clients"
)

const (
	workers     = 2
	queueSize   = 100
	sendTimeout = 10 * time.Second
)

type message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Service struct {
	url    string
	apiKey string
	from   string
	client clients.HTTPClientI
	pool   WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:    cfg.MailAPIURL + "/emails",
		apiKey: cfg.MailAPIKey,
		from:   cfg.MailFrom,
		client: client,
		pool:   NewWorkerPool(workers, queueSize),
	}
}

func (s *Service) Enabled() bool {
	return s.apiKey != ""
}

func (s *Service) LevelUp(email string, level int) {
	s.enqueue(message{
		From:    s.from,
		To:      []string{email},
		Subject: fmt.Sprintf("You reached level %d!", level),
		HTML:    fmt.Sprintf("<p>Congratulations, you are now level <strong>%d</strong>. Keep playing to unlock more rewards.</p>", level),
	})
}

func (s *Service) enqueue(msg message) {
	if !s.Enabled() {
		zap.L().Debug("mail disabled, dropping message", zap.String("subject", msg.Subject))
		return
	}
	ok := s.pool.TryAddTask(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		return s.send(ctx, msg)
	})
	if !ok {
		zap.L().Warn("mail queue full, dropping message", zap.String("subject", msg.Subject))
	}
}

func (s *Service) send(ctx context.Context, msg message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode mail: %w", err)
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+s.apiKey)

	status, _, err := s.client.PostJSON(ctx, s.url, headers, body)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("send mail: unexpected status %d", status)
	}
	zap.L().Debug("mail sent", zap.String("subject", msg.Subject))
	return nil
}

// Close drains queued messages.
func (s *Service) Close() {
	s.pool.Close()
}
