// Package submit posts the Valentine answer to a form endpoint without
// waiting for, or reporting, the outcome.
package submit

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// FormSubmitter sends each answer as a URL-encoded POST on its own goroutine.
type FormSubmitter struct {
	url     string
	field   string
	timeout time.Duration
	client  *http.Client
	log     *log.Logger

	wg sync.WaitGroup
}

// Option configures a FormSubmitter.
type Option func(*FormSubmitter)

// WithClient overrides the HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *FormSubmitter) { f.client = c }
}

// WithLogger sets the logger for transport failures.
func WithLogger(l *log.Logger) Option {
	return func(f *FormSubmitter) { f.log = l }
}

// NewFormSubmitter creates a submitter from cfg.
func NewFormSubmitter(cfg config.SubmitConfig, opts ...Option) *FormSubmitter {
	f := &FormSubmitter{
		url:     cfg.FormURL,
		field:   cfg.Field,
		timeout: cfg.Timeout,
		client:  http.DefaultClient,
		log:     log.New(io.Discard),
	}
	if f.timeout <= 0 {
		f.timeout = 5 * time.Second
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit posts answer in the background and returns immediately.
func (f *FormSubmitter) Submit(answer string) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := f.post(answer); err != nil {
			f.log.Debug("form submit failed", "url", f.url, "err", err)
		}
	}()
}

func (f *FormSubmitter) post(answer string) error {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	body := url.Values{f.field: {answer}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	f.log.Debug("form submitted", "status", resp.StatusCode)
	return nil
}

// Wait blocks until every in-flight submission has finished.
func (f *FormSubmitter) Wait() {
	f.wg.Wait()
}

// Discard is an answer sink that drops every answer.
var Discard scene.AnswerSink = scene.AnswerFunc(func(string) {})
