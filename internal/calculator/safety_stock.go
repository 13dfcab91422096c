package calculator

import "time"

// ConvertSafetyDays returns the calendar date that lies days after today.
func ConvertSafetyDays(days int, today time.Time) time.Time {
	return today.AddDate(0, 0, days)
}

// ConvertSafetyEndDate returns the number of whole days from today to
// endDate, rounded up and never negative.
func ConvertSafetyEndDate(endDate, today time.Time) int {
	return max(0, daysBetween(today, endDate))
}

// SafetyStock keeps a safety stock commitment as both a day count and an
// end date. The zero day count means no safety stock and has no end date.
type SafetyStock struct {
	today   time.Time
	days    int
	endDate *time.Time
}

// NewSafetyStock returns an unset safety stock anchored at today.
func NewSafetyStock(today time.Time) *SafetyStock {
	return &SafetyStock{today: today}
}

func (s *SafetyStock) Today() time.Time { return s.today }
func (s *SafetyStock) Days() int        { return s.days }

// EndDate returns nil while no safety stock is set.
func (s *SafetyStock) EndDate() *time.Time {
	if s.endDate == nil {
		return nil
	}
	end := *s.endDate
	return &end
}

// SetDays makes the day count authoritative and derives the end date.
func (s *SafetyStock) SetDays(days int) {
	if days <= 0 {
		s.reset()
		return
	}
	s.days = days
	end := ConvertSafetyDays(days, s.today)
	s.endDate = &end
}

// SetEndDate makes the picked date authoritative and derives the day count.
func (s *SafetyStock) SetEndDate(endDate time.Time) {
	days := ConvertSafetyEndDate(endDate, s.today)
	if days == 0 {
		s.reset()
		return
	}
	s.days = days
	s.endDate = &endDate
}

// SetToday moves the anchor. The day count is held and the end date follows it.
func (s *SafetyStock) SetToday(today time.Time) {
	s.today = today
	if s.days > 0 {
		end := ConvertSafetyDays(s.days, today)
		s.endDate = &end
	}
}

func (s *SafetyStock) reset() {
	s.days = 0
	s.endDate = nil
}
