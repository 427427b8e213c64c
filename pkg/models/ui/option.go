package ui

import (
	"github.com/HuXin0817/dotsnboxes/pkg/assess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/message"
	"github.com/HuXin0817/dotsnboxes/pkg/models/pusher"
)

type Option func(*Board)

// WithEngine replaces the engine built from the search config.
func WithEngine(engine *assess.Engine) Option {
	return func(b *Board) {
		b.Engine = engine
	}
}

func WithPusher(p *pusher.Pusher[message.MoveRecord]) Option {
	return func(b *Board) {
		b.pusher = p
	}
}

func WithTrigger(trigger func(message.MoveRecord)) Option {
	return func(b *Board) {
		b.TriggerAfterAddLine = trigger
	}
}
