package cliparser

import "strconv"

// Converter turns one raw token into a typed value. When a Converter
// returns an error the matcher records a conversion Warning and reports
// the argument missing instead of storing a partial result.
type Converter func(token string) (interface{}, error)

// StringValue accepts any token unchanged.
func StringValue(token string) (interface{}, error) {
	return token, nil
}

// IntValue converts a token with strconv.Atoi.
func IntValue(token string) (interface{}, error) {
	i, err := strconv.Atoi(token)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Float64Value converts a token with strconv.ParseFloat.
func Float64Value(token string) (interface{}, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// BoolValue converts a token with strconv.ParseBool.
func BoolValue(token string) (interface{}, error) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return nil, err
	}
	return b, nil
}
