package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProducer_PublishReportsFullBuffer(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "orders", 1, zap.NewNop())

	assert.NoError(t, p.Publish([]byte("k"), []byte("v1")))
	assert.ErrorIs(t, p.Publish([]byte("k"), []byte("v2")), ErrBufferFull)
}
