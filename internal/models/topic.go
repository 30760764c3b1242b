package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	TopicMinLength = 2
	TopicMaxLength = 100
)

// ErrInvalidTopic is returned when a topic is missing or out of bounds.
var ErrInvalidTopic = errors.New("invalid topic")

// ValidateTopic trims the topic and checks its length in characters.
func ValidateTopic(topic string) (string, error) {
	t := strings.TrimSpace(topic)
	n := utf8.RuneCountInString(t)
	if n < TopicMinLength || n > TopicMaxLength {
		return "", fmt.Errorf("%w: must be between %d and %d characters, got %d",
			ErrInvalidTopic, TopicMinLength, TopicMaxLength, n)
	}
	return t, nil
}
