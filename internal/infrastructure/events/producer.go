package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/kellyos/kellyos-api/pkg/config"
)

// Producer publica eventos de dominio a Kafka de forma asíncrona.
// Un Producer nil (Kafka deshabilitado) es válido: Publish es no-op.
// La publicación ocurre SIEMPRE después del commit de la transacción;
// si el write a Kafka falla, solo se loguea: el evento es best-effort,
// la DB es la fuente de verdad.
type Producer struct {
	w *kafka.Writer
}

// NewProducer construye el productor. Devuelve nil si Brokers está vacío.
func NewProducer(cfg config.KafkaConfig) *Producer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Warn().Err(err).Int("mensajes", len(messages)).Msg("publicación a kafka falló")
				}
			},
		},
	}
}

// Publish serializa el sobre y lo encola. Key = eventType para particionar
// por tipo y conservar orden relativo dentro de cada tipo.
func (p *Producer) Publish(ctx context.Context, env Envelope) {
	if p == nil {
		return
	}
	raw, err := json.Marshal(env)
	if err != nil {
		log.Warn().Err(err).Str("type", env.Type).Msg("serializar evento falló")
		return
	}
	msg := kafka.Message{
		Key:   []byte(env.Type),
		Value: raw,
		Time:  time.Now(),
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		log.Warn().Err(err).Str("type", env.Type).Msg("encolar evento falló")
	}
}

// Close vacía el buffer y cierra el writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.w.Close()
}
