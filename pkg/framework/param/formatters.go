package param

import (
	"fmt"
	"strconv"
	"strings"
)

// FrequencyFormatter formats frequency values with Hz/kHz
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser parses frequency strings
func FrequencyParser(str string) (float64, error) {
	str = strings.TrimSpace(str)

	lower := strings.ToLower(str)
	if strings.HasSuffix(lower, "khz") {
		numStr := strings.TrimSpace(str[:len(str)-3])
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}

	if strings.HasSuffix(lower, "hz") {
		str = str[:len(str)-2]
	}
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// QFormatter formats resonance values
func QFormatter(q float64) string {
	return fmt.Sprintf("Q: %.2f", q)
}

// QParser accepts "2.5", "Q 2.5" and "Q: 2.5"
func QParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if len(str) > 0 && (str[0] == 'Q' || str[0] == 'q') {
		str = strings.TrimPrefix(str[1:], ":")
	}
	return parseFloat(strings.TrimSpace(str))
}
