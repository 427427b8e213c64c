package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrBoardSize   = errors.New("board needs at least 2 points on each side")
	ErrWindowSize  = errors.New("window too small for its offsets")
	ErrSearchDepth = errors.New("search depth must be positive")
)

type Config struct {
	Board  BoardConf
	Search SearchConf
	Log    logx.LogConf
	Pprof  string `json:",optional"`
}

type BoardConf struct {
	Width        int     `json:",default=3"`
	Height       int     `json:",default=3"`
	WindowWidth  float64 `json:",default=600"`
	WindowHeight float64 `json:",default=600"`
	OffsetX      float64 `json:",default=60"`
	OffsetY      float64 `json:",default=60"`
}

type SearchConf struct {
	Depth       int           `json:",default=3"`
	CacheExpire time.Duration `json:",default=10m"`
}

func (c Config) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrBoardSize, c.Board.Width, c.Board.Height)
	}
	if c.Board.WindowWidth <= 2*c.Board.OffsetX || c.Board.WindowHeight <= 2*c.Board.OffsetY {
		return fmt.Errorf("%w: %gx%g with offsets %g/%g", ErrWindowSize,
			c.Board.WindowWidth, c.Board.WindowHeight, c.Board.OffsetX, c.Board.OffsetY)
	}
	if c.Search.Depth < 1 {
		return fmt.Errorf("%w: %d", ErrSearchDepth, c.Search.Depth)
	}
	return nil
}

func Load(file string) (c Config, err error) {
	if err = conf.Load(file, &c); err != nil {
		return
	}
	err = c.Validate()
	return
}

func LoadFromYamlBytes(content []byte) (c Config, err error) {
	if err = conf.LoadFromYamlBytes(content, &c); err != nil {
		return
	}
	err = c.Validate()
	return
}

func MustLoad(file string) Config {
	c, err := Load(file)
	logx.Must(err)
	return c
}
