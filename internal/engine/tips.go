package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"ecoquest/internal/catalog"
)

// TipProvider serves advisory strings. It never touches GameState.
type TipProvider struct {
	tips []string
}

// NewTipProvider uses the given tips, or the built-in list when none are usable.
func NewTipProvider(tips []string) *TipProvider {
	var clean []string
	for _, t := range tips {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) == 0 {
		clean = catalog.Tips()
	}
	return &TipProvider{tips: clean}
}

// LoadTipProvider reads a JSON array of strings. A missing file or empty
// path falls back to the built-in tips; a malformed file is an error.
func LoadTipProvider(path string) (*TipProvider, error) {
	if path == "" {
		return NewTipProvider(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTipProvider(nil), nil
		}
		return nil, fmt.Errorf("read tips: %w", err)
	}
	var tips []string
	if err := json.Unmarshal(data, &tips); err != nil {
		return nil, fmt.Errorf("parse tips %s: %w", path, err)
	}
	return NewTipProvider(tips), nil
}

func (p *TipProvider) Len() int { return len(p.tips) }

// ForDay returns the tip of the day, indexed by weekday.
func (p *TipProvider) ForDay(d time.Weekday) string {
	return p.tips[int(d)%len(p.tips)]
}

// Random returns any tip.
func (p *TipProvider) Random(r *rand.Rand) string {
	return p.tips[r.Intn(len(p.tips))]
}
