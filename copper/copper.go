// Package copper converts between copper amounts and the gold/silver/copper notation used in game.
package copper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	PerSilver = 100
	PerGold   = 100 * PerSilver
)

// Format renders 10250 as "1g 2s 50c", omitting zero components
func Format(copper int) string {
	sign := ""
	if copper < 0 {
		sign = "-"
		copper = -copper
	}
	gold := copper / PerGold
	silver := (copper % PerGold) / PerSilver
	rem := copper % PerSilver

	var parts []string
	if gold > 0 {
		parts = append(parts, strconv.Itoa(gold)+"g")
	}
	if silver > 0 {
		parts = append(parts, strconv.Itoa(silver)+"s")
	}
	if rem > 0 || len(parts) == 0 {
		parts = append(parts, strconv.Itoa(rem)+"c")
	}
	return sign + strings.Join(parts, " ")
}

var (
	goldPart   = regexp.MustCompile(`(\d+)g`)
	silverPart = regexp.MustCompile(`(\d+)s`)
	copperPart = regexp.MustCompile(`(\d+)c`)
)

// Parse reads a string like "99g 99s 99c" back into copper. Missing parts count as zero.
func Parse(price string) int {
	copper := 0
	if m := goldPart.FindStringSubmatch(price); m != nil {
		n, _ := strconv.Atoi(m[1])
		copper += n * PerGold
	}
	if m := silverPart.FindStringSubmatch(price); m != nil {
		n, _ := strconv.Atoi(m[1])
		copper += n * PerSilver
	}
	if m := copperPart.FindStringSubmatch(price); m != nil {
		n, _ := strconv.Atoi(m[1])
		copper += n
	}
	return copper
}

var amountNotation = regexp.MustCompile(`^(\d+g)?\s*(\d+s)?\s*(\d+c)?$`)

// ParseAmount accepts a plain copper count ("1000") or the in-game notation ("10s", "1g 5s")
func ParseAmount(amount string) (int, error) {
	amount = strings.TrimSpace(amount)
	if n, err := strconv.Atoi(amount); err == nil {
		return n, nil
	}
	if amount == "" || !amountNotation.MatchString(amount) {
		return 0, fmt.Errorf("invalid copper amount %q, expected e.g. 1000 or 1g 5s 20c", amount)
	}
	return Parse(amount), nil
}
