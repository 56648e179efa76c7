package session

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNotNumber = errors.New("not a number")
	ErrNegative  = errors.New("negative value")
)

// ParseAmount разбирает неотрицательную денежную сумму;
// допускается и запятая, и точка как разделитель
func ParseAmount(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// ParseCount разбирает неотрицательное целое количество
func ParseCount(text string) (int, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// ParseID разбирает числовой Telegram ID пользователя
func ParseID(text string) (int64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrNotNumber
	}
	return v, nil
}
