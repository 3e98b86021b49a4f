package refund

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrNoRefundDue = errors.New("no refund amount due")

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp])\.?[Mm]\.?$`)

// Policy computes refund amounts under the practice's cancellation window.
// Cancellations at least FullRefundWindow before the session refund the full
// paid amount; later cancellations refund half. The practice operates in a
// single fixed timezone, so session times are resolved against a fixed UTC
// offset rather than the timezone database.
type Policy struct {
	loc              *time.Location
	fullRefundWindow time.Duration
}

func NewPolicy(tzOffsetMinutes int, fullRefundWindow time.Duration) *Policy {
	return &Policy{
		loc:              time.FixedZone("practice", tzOffsetMinutes*60),
		fullRefundWindow: fullRefundWindow,
	}
}

// Compute returns the refund for a paid amount given the booking's scheduled
// date and local wall-clock time ("H:MM AM/PM"). A missing or unparseable
// time falls open to a full refund. A computed refund of zero or less is
// rejected with ErrNoRefundDue rather than reported as a zero-amount success.
func (p *Policy) Compute(paidPaise int64, scheduledDate time.Time, scheduledTime *string, now time.Time) (int64, error) {
	if paidPaise <= 0 {
		return 0, ErrNoRefundDue
	}

	if scheduledTime == nil {
		return paidPaise, nil
	}

	minutes, ok := parseClock(*scheduledTime)
	if !ok {
		return paidPaise, nil
	}

	sessionStart := time.Date(
		scheduledDate.Year(), scheduledDate.Month(), scheduledDate.Day(),
		0, minutes, 0, 0, p.loc,
	)

	if sessionStart.Sub(now) >= p.fullRefundWindow {
		return paidPaise, nil
	}

	half := paidPaise / 2
	if half <= 0 {
		return 0, ErrNoRefundDue
	}
	return half, nil
}

// parseClock converts a 12-hour clock string to minutes since midnight.
func parseClock(s string) (int, bool) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, false
	}

	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "p") {
		hour += 12
	}
	return hour*60 + minute, true
}
