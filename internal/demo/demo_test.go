package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"car-factory/internal/config"
	"car-factory/internal/factory"
	"car-factory/internal/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func defaultConfig() *config.Config {
	return &config.Config{
		BalancerType: factory.LeastBusy,
		Requests:     10,
		Factories: []config.FactorySpec{
			{Brand: "ford", Warmup: 2},
			{Brand: "ford", Warmup: 1},
			{Brand: "ford", Warmup: 0},
			{Brand: "toyota", Warmup: 1},
		},
	}
}

func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	err := Run(defaultConfig(), &out, nil)
	assert.NoError(t, err)

	expected := []string{
		"Sedan: Ford Sedan",
		"Suv: Ford Suv",
		"Sedan: Toyota Sedan",
		"Suv: Toyota Suv",
		"Ford",
		"Toyota",
		"Ford", "Ford", "Ford", "Toyota",
		"Ford", "Ford", "Ford", "Toyota",
		"Ford", "Ford",
	}
	assert.Equal(t, expected, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"))
}

func TestRun_LogsShares(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	err := Run(defaultConfig(), &bytes.Buffer{}, logger.New(zap.New(core)))
	assert.NoError(t, err)

	finished := logs.FilterMessage("Demo finished").All()
	assert.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.Equal(t, uint64(10), fields["routed"])
	assert.Equal(t, uint64(4), fields["ford_0"])
	assert.Equal(t, uint64(4), fields["ford_1"])
	assert.Equal(t, uint64(3), fields["ford_2"])
	assert.Equal(t, uint64(3), fields["toyota_3"])
}

func TestRun_EmptyPlant(t *testing.T) {
	cfg := defaultConfig()
	cfg.Factories = nil

	var out bytes.Buffer
	err := Run(cfg, &out, nil)

	assert.True(t, errors.Is(err, factory.ErrInvalidArgument))
	assert.Contains(t, out.String(), "Toyota\n")
}
