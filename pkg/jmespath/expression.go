package jmespath

import (
	"encoding/json"
	"reflect"

	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/jmespath/go-jmespath"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration of a JMESPath expression, as embedded in
// configuration files.
type Configuration struct {
	// The JMESPath expression to evaluate.
	Expression string `json:"expression"`

	// Inputs and their expected outputs, which are evaluated when
	// the expression is compiled.
	TestVectors []TestVector `json:"testVectors,omitempty"`
}

// TestVector is an input of a JMESPath expression, together with the
// output that the expression is expected to yield.
type TestVector struct {
	Input          any `json:"input"`
	ExpectedOutput any `json:"expectedOutput"`
}

// Expression represents a parsed JMESPath expression.
type Expression struct {
	expression *jmespath.JMESPath
}

// NewExpressionFromConfiguration creates a new JMESPath Expression
// from the provided configuration. This will also evaluate all test
// vectors and return an error if any of them fail.
func NewExpressionFromConfiguration(config *Configuration) (*Expression, error) {
	if config == nil {
		return nil, status.Error(codes.InvalidArgument, "No JMESPath expression configuration provided")
	}

	expression, err := jmespath.Compile(config.Expression)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid JMESPath expression %#v: %s", config.Expression, err)
	}

	expr := &Expression{
		expression: expression,
	}
	for i, t := range config.TestVectors {
		if err := expr.checkTestVector(t); err != nil {
			return nil, util.StatusWrapf(err, "Failed to validate JMESPath expression %#v with test vector %d", config.Expression, i)
		}
	}
	return expr, nil
}

// MustCompile creates an Expression from a string, panicking if the
// expression is invalid.
func MustCompile(expression string) *Expression {
	expr, err := NewExpressionFromConfiguration(&Configuration{
		Expression: expression,
	})
	if err != nil {
		panic(util.StatusWrapf(err, "Failed to compile JMESPath expression %#v", expression))
	}
	return expr
}

// toJSONValue converts arbitrary data to maps, slices and scalars, as
// if it were encoded as JSON and decoded again. This causes struct
// fields to be named according to their "json" tags.
func toJSONValue(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Failed to convert data to JSON: %s", err)
	}
	var value any
	if err := json.Unmarshal(encoded, &value); err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to convert data from JSON: %s", err)
	}
	return value, nil
}

// Search evaluates the JMESPath expression against the JSON
// representation of the provided data, returning the result as
// structured data.
func (e *Expression) Search(data any) (any, error) {
	value, err := toJSONValue(data)
	if err != nil {
		return nil, err
	}
	result, err := e.expression.Search(value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Failed to evaluate JMESPath expression: %s", err)
	}
	return result, nil
}

func (e *Expression) checkTestVector(t TestVector) error {
	actual, err := e.Search(t.Input)
	if err != nil {
		return util.StatusWrap(err, "Failed to evaluate JMESPath expression on test vector input")
	}
	expected, err := toJSONValue(t.ExpectedOutput)
	if err != nil {
		return err
	}

	if !reflect.DeepEqual(actual, expected) {
		expectedJSON, _ := json.Marshal(expected)
		actualJSON, _ := json.Marshal(actual)
		return status.Errorf(codes.InvalidArgument, "Test vector failed: expected %s, got %s", string(expectedJSON), string(actualJSON))
	}
	return nil
}
