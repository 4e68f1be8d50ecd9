package randomstringgenerator

import (
	"math/rand"
	"time"

	"calremind/internal/core/domain/user"
)

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateActivationToken() user.ActivationToken {
	return user.ActivationToken(g.generate(8))
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	return user.SessionToken(g.generate(32))
}

func (g *Generator) GenerateLinkCode() user.LinkCode {
	return user.LinkCode(g.generate(8))
}

func (g *Generator) generate(length int) []rune {
	b := make([]rune, length)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return b
}
