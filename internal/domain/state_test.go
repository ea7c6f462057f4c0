package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToday = NewDay(2024, time.May, 20)
	testNow   = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
)

func TestNewPageState_Defaults(t *testing.T) {
	state := NewPageState(testToday)

	require.NotNil(t, state.Selected)
	assert.Equal(t, testToday, *state.Selected)
	assert.Equal(t, ModeGuest, state.Mode)
	assert.Empty(t, state.Bookings)
	assert.Empty(t, state.Blocked)
}

func TestIsDisabled_PastDaysAlwaysDisabled(t *testing.T) {
	state := NewPageState(testToday)

	for i := 1; i <= 400; i += 7 {
		assert.True(t, state.IsDisabled(testToday.AddDays(-i), testToday), "day -%d", i)
	}
	assert.False(t, state.IsDisabled(testToday, testToday))
	assert.False(t, state.IsDisabled(testToday.AddDays(1), testToday))
}

func TestIsDisabled_BlockedDays(t *testing.T) {
	state := NewPageState(testToday)
	future := testToday.AddDays(10)
	state.Blocked = []Day{future, testToday}

	assert.True(t, state.IsDisabled(future, testToday))
	assert.True(t, state.IsDisabled(testToday, testToday))
	assert.False(t, state.IsDisabled(future.AddDays(1), testToday))
}

func TestSelectDate(t *testing.T) {
	state := NewPageState(testToday)
	target := testToday.AddDays(3)

	require.NoError(t, state.SelectDate(target, testToday))
	assert.Equal(t, target, *state.Selected)

	err := state.SelectDate(testToday.AddDays(-1), testToday)
	assert.ErrorIs(t, err, ErrDateDisabled)
	assert.Equal(t, target, *state.Selected, "selection must not change")

	state.Blocked = append(state.Blocked, testToday.AddDays(5))
	err = state.SelectDate(testToday.AddDays(5), testToday)
	assert.ErrorIs(t, err, ErrDateDisabled)

	state.ClearSelection()
	assert.Nil(t, state.Selected)
}

func TestSubmitBooking_WithoutDateDoesNotMutate(t *testing.T) {
	state := NewPageState(testToday)
	state.ClearSelection()

	_, err := state.SubmitBooking("id-1", "Анна", "+79991234567", testNow, testToday)

	assert.ErrorIs(t, err, ErrNoDateSelected)
	assert.Empty(t, state.Bookings)
}

func TestSubmitBooking_AppendsExactlyOne(t *testing.T) {
	state := NewPageState(testToday)
	date := NewDay(2024, time.June, 1)
	require.NoError(t, state.SelectDate(date, testToday))

	booking, err := state.SubmitBooking("id-1", "Анна", "+79991234567", testNow, testToday)

	require.NoError(t, err)
	require.Len(t, state.Bookings, 1)
	assert.Equal(t, date, booking.Date)
	assert.Equal(t, "Анна", booking.Name)
	assert.Equal(t, booking, state.Bookings[0])
}

func TestSubmitBooking_DuplicatesAllowedInOrder(t *testing.T) {
	state := NewPageState(testToday)

	_, err := state.SubmitBooking("id-1", "Анна", "+79991234567", testNow, testToday)
	require.NoError(t, err)
	_, err = state.SubmitBooking("id-2", "Иван", "+79990000000", testNow, testToday)
	require.NoError(t, err)

	require.Len(t, state.Bookings, 2)
	assert.Equal(t, "id-1", state.Bookings[0].ID)
	assert.Equal(t, "id-2", state.Bookings[1].ID)
	assert.Equal(t, state.Bookings[0].Date, state.Bookings[1].Date)
}

func TestSubmitBooking_Rejections(t *testing.T) {
	state := NewPageState(testToday)

	_, err := state.SubmitBooking("id-1", "  ", "+79991234567", testNow, testToday)
	assert.ErrorIs(t, err, ErrMissingContact)

	_, err = state.BlockSelected()
	require.NoError(t, err)

	_, err = state.SubmitBooking("id-2", "Анна", "+79991234567", testNow, testToday)
	assert.ErrorIs(t, err, ErrDateUnavailable)
	assert.Empty(t, state.Bookings)
}

func TestBlockSelected_Idempotent(t *testing.T) {
	state := NewPageState(testToday)
	target := testToday.AddDays(2)
	require.NoError(t, state.SelectDate(target, testToday))
	require.True(t, state.CanBlockSelected())

	day, err := state.BlockSelected()
	require.NoError(t, err)
	assert.Equal(t, target, day)
	assert.False(t, state.CanBlockSelected())

	for i := 0; i < 3; i++ {
		_, err = state.BlockSelected()
		assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
	}
	assert.Equal(t, []Day{target}, state.Blocked)
	assert.Equal(t, target, *state.Selected, "selection is kept after blocking")
}

func TestBlockSelected_NoSelection(t *testing.T) {
	state := NewPageState(testToday)
	state.ClearSelection()

	_, err := state.BlockSelected()
	assert.ErrorIs(t, err, ErrNoDateSelected)
	assert.False(t, state.CanBlockSelected())
}

func TestUnblock(t *testing.T) {
	state := NewPageState(testToday)
	days := []Day{testToday.AddDays(1), testToday.AddDays(2), testToday.AddDays(3)}
	state.Blocked = append(state.Blocked, days...)

	removed, err := state.Unblock(1)
	require.NoError(t, err)
	assert.Equal(t, days[1], removed)
	assert.Equal(t, []Day{days[0], days[2]}, state.Blocked)
	assert.False(t, state.IsDisabled(removed, testToday))

	_, err = state.Unblock(2)
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	_, err = state.Unblock(-1)
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	assert.Len(t, state.Blocked, 2)
}

func TestUnblock_PastDayStaysDisabled(t *testing.T) {
	state := NewPageState(testToday)
	past := testToday.AddDays(-3)
	state.Blocked = []Day{past}

	_, err := state.Unblock(0)
	require.NoError(t, err)
	assert.True(t, state.IsDisabled(past, testToday))
}

func TestToggleAdmin_Lossless(t *testing.T) {
	state := NewPageState(testToday)
	_, err := state.SubmitBooking("id-1", "Анна", "+79991234567", testNow, testToday)
	require.NoError(t, err)
	_, err = state.BlockSelected()
	require.NoError(t, err)
	before := state.Clone()

	assert.Equal(t, ModeAdmin, state.ToggleAdmin())
	assert.Equal(t, ModeGuest, state.ToggleAdmin())

	assert.Equal(t, before, state)
}

func TestClone_IsIndependent(t *testing.T) {
	state := NewPageState(testToday)
	state.Blocked = []Day{testToday.AddDays(1), testToday.AddDays(2)}
	clone := state.Clone()

	_, err := state.Unblock(0)
	require.NoError(t, err)
	state.ClearSelection()

	assert.Len(t, clone.Blocked, 2)
	assert.Equal(t, testToday.AddDays(1), clone.Blocked[0])
	require.NotNil(t, clone.Selected)
}

func TestConfigureReminder(t *testing.T) {
	state := NewPageState(testToday)
	booking, err := state.SubmitBooking("id-1", "Анна", "+79991234567", testNow, testToday)
	require.NoError(t, err)

	err = state.ConfigureReminder(Reminder{BookingID: "missing", LeadTime: LeadTimeOneDay, Message: "x"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = state.ConfigureReminder(Reminder{BookingID: booking.ID, LeadTime: "5d", Message: "x"})
	assert.ErrorIs(t, err, ErrInvalidLeadTime)

	reminder := Reminder{BookingID: booking.ID, LeadTime: LeadTimeOneWeek, Message: "Жду!"}
	require.NoError(t, state.ConfigureReminder(reminder))
	assert.Equal(t, reminder, state.Reminders[booking.ID])
}

// Сценарий: закрыть 4 июля, затем забронировать 5 июля
func TestScenario_BlockThenBookNextDay(t *testing.T) {
	today := NewDay(2024, time.July, 1)
	state := NewPageState(today)
	state.Mode = ModeAdmin
	july4 := NewDay(2024, time.July, 4)
	july5 := NewDay(2024, time.July, 5)

	require.NoError(t, state.SelectDate(july4, today))
	_, err := state.BlockSelected()
	require.NoError(t, err)
	assert.Equal(t, []Day{july4}, state.Blocked)

	assert.ErrorIs(t, state.SelectDate(july4, today), ErrDateDisabled)
	assert.True(t, state.IsDisabled(july4, today))

	require.NoError(t, state.SelectDate(july5, today))
	_, err = state.SubmitBooking("id-1", "Ivan", "+79990000000", testNow, today)
	require.NoError(t, err)

	require.Len(t, state.Bookings, 1)
	assert.Equal(t, july5, state.Bookings[0].Date)
	assert.Equal(t, "Ivan", state.Bookings[0].Name)
	assert.Equal(t, "+79990000000", state.Bookings[0].Phone)
}

func TestLeadTimes(t *testing.T) {
	lt, err := ParseLeadTime("1w")
	require.NoError(t, err)
	assert.Equal(t, 7, lt.Days())

	_, err = ParseLeadTime("2w")
	assert.ErrorIs(t, err, ErrInvalidLeadTime)

	r := Reminder{LeadTime: LeadTimeTwoDays}
	sendAt := r.SendAt(NewDay(2024, time.July, 5), time.UTC)
	assert.Equal(t, time.Date(2024, 7, 3, 10, 0, 0, 0, time.UTC), sendAt)
}

func TestDefaultReminderMessage(t *testing.T) {
	b := Booking{Name: "Анна", Date: NewDay(2024, time.June, 1)}

	assert.Equal(t, "Привет, Анна! Напоминаю о нашей фотосессии 01.06.2024. Жду встречи! 📸",
		DefaultReminderMessage(b))
}
