package runner_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/viant/aoc/runner"
	"gopkg.in/yaml.v3"
)

type mapInputs map[int]string

func (m mapInputs) Load(ctx context.Context, year, day int) (string, error) {
	text, ok := m[day]
	if !ok {
		return "", fmt.Errorf("no input for day %d", day)
	}
	return text, nil
}

func newRegistry() *runner.Registry {
	registry := runner.NewRegistry()
	registry.Register(2020, 2, runner.Parts{
		One: func(input string) (any, error) { return len(input), nil },
		Two: func(input string) (any, error) { return strings.ToUpper(input), nil },
	})
	registry.Register(2020, 1, runner.Parts{
		One: func(input string) (any, error) { return nil, errors.New("boom") },
		Two: func(input string) (any, error) { panic("bad input") },
	})
	registry.Register(2020, 3, runner.Parts{
		One: func(input string) (any, error) { return 3, nil },
	})
	registry.Register(2021, 1, runner.Parts{})
	return registry
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestRegistry(t *testing.T) {
	registry := newRegistry()
	assert.Equal(t, []int{1, 2, 3}, registry.Days(2020))
	assert.Equal(t, []int{2020, 2021}, registry.Years())
	_, ok := registry.Lookup(2020, 9)
	assert.False(t, ok)
	assert.Panics(t, func() { registry.Register(2020, 1, runner.Parts{}) })
	assert.Equal(t, "2020/01", runner.Key{Year: 2020, Day: 1}.String())
}

func TestRunner_Run(t *testing.T) {
	inputs := mapInputs{1: "x", 2: "abc", 3: ""}
	r := runner.New(newRegistry(), inputs, runner.WithLogger(quietLogger()), runner.WithConcurrency(2))

	results, err := r.Run(context.Background(), 2020)
	if !assert.Nil(t, err) {
		return
	}
	assert.Len(t, results, 6)

	var testCases = []struct {
		description string
		index       int
		day         int
		part        int
		answer      string
		err         string
	}{
		{description: "solver error", index: 0, day: 1, part: 1, err: "boom"},
		{description: "solver panic", index: 1, day: 1, part: 2, err: "solver panic: bad input"},
		{description: "int answer", index: 2, day: 2, part: 1, answer: "3"},
		{description: "string answer", index: 3, day: 2, part: 2, answer: "ABC"},
		{description: "unsolved part", index: 5, day: 3, part: 2, err: runner.ErrUnsolved.Error()},
	}
	for _, testCase := range testCases {
		result := results[testCase.index]
		assert.Equal(t, testCase.day, result.Day, testCase.description)
		assert.Equal(t, testCase.part, result.Part, testCase.description)
		assert.Equal(t, testCase.answer, result.Answer, testCase.description)
		assert.Equal(t, testCase.err, result.Error, testCase.description)
	}
}

func TestRunner_RunSelected(t *testing.T) {
	r := runner.New(newRegistry(), mapInputs{2: "ab"}, runner.WithLogger(quietLogger()), runner.WithParts(1))
	results, err := r.Run(context.Background(), 2020, 2)
	if !assert.Nil(t, err) {
		return
	}
	assert.Len(t, results, 1)
	assert.Equal(t, "2", results[0].Answer)

	_, err = r.Run(context.Background(), 2020, 1)
	assert.NotNil(t, err, "missing input aborts the run")

	_, err = r.Run(context.Background(), 2020, 7)
	assert.NotNil(t, err)

	_, err = r.Run(context.Background(), 1999)
	assert.NotNil(t, err)
}

func TestReport(t *testing.T) {
	results := []*runner.Result{
		{Year: 2020, Day: 1, Part: 1, Answer: "42"},
		{Year: 2020, Day: 1, Part: 2, Err: errors.New("boom"), Error: "boom"},
	}

	buf := &bytes.Buffer{}
	assert.Nil(t, runner.Report(buf, results, runner.FormatText))
	text := buf.String()
	assert.True(t, strings.Contains(text, "2020/01"), text)
	assert.True(t, strings.Contains(text, "42"), text)
	assert.True(t, strings.Contains(text, "error: boom"), text)

	buf.Reset()
	assert.Nil(t, runner.Report(buf, results, runner.FormatYAML))
	var decoded []*runner.Result
	assert.Nil(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	if assert.Len(t, decoded, 2) {
		assert.Equal(t, "42", decoded[0].Answer)
		assert.Equal(t, "boom", decoded[1].Error)
	}

	assert.NotNil(t, runner.Report(buf, results, "xml"))
}

func TestParts(t *testing.T) {
	parts := runner.Parts{One: func(input string) (any, error) { return input + "!", nil }}
	answer, err := parts.Part1("x")
	assert.Nil(t, err)
	assert.Equal(t, "x!", answer)
	_, err = parts.Part2("x")
	assert.True(t, errors.Is(err, runner.ErrUnsolved))
}
