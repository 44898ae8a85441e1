// Package mentor proxies chat prompts to an external text-completion
// service. It is a collaborator, not part of the consistency core: a
// bounded outbound call that degrades to a fixed fallback reply.
package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

// Fallback is returned when the upstream errors or times out.
const Fallback = "AI bilan bog'lanishda xatolik yuz berdi. Iltimos qayta urinib ko'ring."

const systemContext = "Siz startup sohasida tajribali mentor va maslahatchi siz. " +
	"Foydalanuvchilarga startup yaratish, jamoa qurish, biznes rejalashtirish va boshqa " +
	"startup bilan bog'liq savollar bo'yicha yordam bering. Javoblaringiz qisqa, aniq va " +
	"amaliy bo'lsin. O'zbek tilida javob bering."

// Message is one turn of chat history. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	http    *http.Client
	log     *zap.Logger
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

func New(o Options, log *zap.Logger) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.Model == "" {
		o.Model = "gemini-1.5-flash"
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		log:     log,
		baseURL: o.BaseURL,
		apiKey:  o.APIKey,
		model:   o.Model,
		timeout: o.Timeout,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		TopK            int     `json:"topK"`
		TopP            float64 `json:"topP"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Reply asks the mentor. Any upstream failure (timeout, non-2xx status,
// malformed body) returns the Fallback text instead of an error; the
// workflows never block on this call.
func (c *Client) Reply(ctx context.Context, history []Message, prompt string) string {
	reply, err := c.generate(ctx, history, prompt)
	if err != nil {
		c.log.Warn("mentor upstream failed", zap.Error(err))
		return Fallback
	}
	return reply
}

func (c *Client) generate(ctx context.Context, history []Message, prompt string) (string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return "", fmt.Errorf("%w: mentor not configured", domain.ErrUpstreamUnavailable)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := generateRequest{}
	req.Contents = append(req.Contents,
		content{Role: "user", Parts: []part{{Text: systemContext}}},
		content{Role: "model", Parts: []part{{Text: "Tushundim. Men sizga startup sohasida yordam berish uchun tayyorman. Savolingizni bering!"}}},
	)
	for _, m := range history {
		role := m.Role
		if role != "model" {
			role = "user"
		}
		req.Contents = append(req.Contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}
	req.Contents = append(req.Contents, content{Role: "user", Parts: []part{{Text: prompt}}})
	req.GenerationConfig.Temperature = 0.7
	req.GenerationConfig.TopK = 40
	req.GenerationConfig.TopP = 0.95
	req.GenerationConfig.MaxOutputTokens = 1024

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrUpstreamUnavailable)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
