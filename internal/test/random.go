package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

const lowerLetters = "abcdefghijklmnopqrstuvwxyz"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomWord returns a lower-case word with length in [minLen, maxLen].
func RandomWord(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(lowerLetters[randomIntn(len(lowerLetters))])
	}
	return b.String()
}

// RandomSupplier returns a valid active supplier with a random name and tags.
// ID is left zero for the registry to assign.
func RandomSupplier() model.Supplier {
	reliabilities := []model.Reliability{model.ReliabilityHigh, model.ReliabilityMedium, model.ReliabilityLow}
	return model.Supplier{
		Name:            strings.ToUpper(RandomWord(1, 1)) + RandomWord(4, 10) + " Traders",
		City:            RandomWord(5, 9),
		Reliability:     reliabilities[randomIntn(len(reliabilities))],
		AvgDeliveryDays: 1 + randomIntn(7),
		Specialties:     []string{RandomWord(4, 8) + " " + RandomWord(4, 8)},
		Status:          model.SupplierStatusActive,
		Rating:          float64(10+randomIntn(41)) / 10,
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
