package tracex

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type sessionIDKey struct{}
type turnKey struct{}

// WithSessionID 标记一局游戏，一个进程通常只有一局。
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

func SessionIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(sessionIDKey{}).(string)
	return s, ok && s != ""
}

func WithTurn(ctx context.Context, turn int) context.Context {
	return context.WithValue(ctx, turnKey{}, turn)
}

func TurnFrom(ctx context.Context) (int, bool) {
	t, ok := ctx.Value(turnKey{}).(int)
	return t, ok
}

// NewSessionID 生成 8 字节随机 session_id（hex）。
// 用 crypto/rand，不消耗游戏的随机流。
func NewSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
