package drafts

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockdrafts github.com/KirkDiggler/counterpick-bot/internal/repositories/drafts TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// RealTimeProvider returns the wall clock
func RealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
