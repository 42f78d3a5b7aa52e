package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"storefront/internal/domain/model"

	"github.com/segmentio/kafka-go"
)

// 注文確定時に流すイベント
type OrderPlacedEvent struct {
	OrderID  int64     `json:"orderId"`
	CartID   int64     `json:"cartId"`
	PlacedAt time.Time `json:"placedAt"`
}

// kafka.Writerのうち使う部分だけ（テストで差し替える）
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// 送信1回の上限。注文リクエスト（セッションのロック中）を長く止めない。
const publishTimeout = 2 * time.Second

type KafkaOrderPublisher struct {
	w       messageWriter
	topic   string
	timeout time.Duration
}

func NewKafkaOrderPublisher(w messageWriter, topic string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{w: w, topic: topic, timeout: publishTimeout}
}

// NewKafkaWriterはtopicをメッセージ側で指定するWriterを作る。
// 1件ずつすぐ送る（既定のBatchTimeout 1sを待たない）。
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           publishTimeout,
	}
}

// キーは注文ID（同じ注文のイベントは同じパーティションへ）。
// リクエストのキャンセルとは切り離し、timeoutで打ち切る。
func (p *KafkaOrderPublisher) PublishOrderPlaced(ctx context.Context, order model.Order) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	body, err := json.Marshal(OrderPlacedEvent{
		OrderID:  order.ID,
		CartID:   order.CartID,
		PlacedAt: order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("order.placed")},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order event %d: %w", order.ID, err)
	}
	return nil
}

// Kafka未設定のとき用
type NopOrderPublisher struct{}

func (NopOrderPublisher) PublishOrderPlaced(context.Context, model.Order) error { return nil }
