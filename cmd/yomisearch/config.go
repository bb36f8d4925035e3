package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"

	"yomisearch/dictionary"
	"yomisearch/tokenize"
)

type config struct {
	Dict       string `env:"YOMISEARCH_DICT" envDefault:"ipa"`
	MaxResults int    `env:"YOMISEARCH_MAX_RESULTS" envDefault:"16"`
	Verbose    bool   `env:"YOMISEARCH_VERBOSE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c config) dict() (dictionary.Dict, error) {
	switch c.Dict {
	case "ipa":
		return dictionary.NewKagomeDict(ipa.Dict()), nil
	case "uni":
		return dictionary.NewKagomeDict(uni.Dict()), nil
	default:
		return nil, fmt.Errorf("unknown dictionary %q (want ipa or uni)", c.Dict)
	}
}

func (c config) tokenizer(bridge bool) (*tokenize.Tokenizer, error) {
	d, err := c.dict()
	if err != nil {
		return nil, err
	}
	return tokenize.New(d, tokenize.WithGlobalWhitespaceBridge(bridge)), nil
}
