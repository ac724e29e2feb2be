package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNumberSource_Seeded(t *testing.T) {
	a := NewNumberSource(7)
	b := NewNumberSource(7)

	for i := 0; i < 20; i++ {
		n := a.IntN(RegistrationSpace)
		require.Equal(t, n, b.IntN(RegistrationSpace))
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, RegistrationSpace)
	}
}

func TestNumberAllocator_FirstFreeDraw(t *testing.T) {
	a := newNumberAllocator(&sequenceSource{values: []int{5, 6}}, 4)
	a.claim(5)

	n, err := a.next()

	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestNumberAllocator_ScansAfterMaxAttempts(t *testing.T) {
	source := &sequenceSource{values: []int{MaxRegistrationNumber}}
	a := newNumberAllocator(source, 3)
	a.claim(MaxRegistrationNumber)
	a.claim(0)

	n, err := a.next()

	require.NoError(t, err)
	require.Equal(t, 1, n, "scan wraps past the top of the range")
	require.Equal(t, 3, source.calls)
}

func TestNumberAllocator_ZeroAttemptsScansImmediately(t *testing.T) {
	source := &sequenceSource{values: []int{0}}
	a := newNumberAllocator(source, 0)

	n, err := a.next()

	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Zero(t, source.calls)
}

func TestNumberAllocator_Exhausted(t *testing.T) {
	a := newNumberAllocator(NewNumberSource(1), DefaultMaxAttempts)
	for n := 0; n < RegistrationSpace; n++ {
		a.claim(n)
	}

	_, err := a.next()

	require.ErrorIs(t, err, ErrRegistrationSpaceExhausted)
	require.Zero(t, a.free())
}

func TestNumberAllocator_LastFreeNumber(t *testing.T) {
	a := newNumberAllocator(NewNumberSource(3), DefaultMaxAttempts)
	for n := 0; n < RegistrationSpace; n++ {
		if n != 4321 {
			a.claim(n)
		}
	}

	n, err := a.next()

	require.NoError(t, err)
	require.Equal(t, 4321, n)
}

func TestRegisterStudent_SpaceExhausted(t *testing.T) {
	r := newTestRegistry(t)
	seed(t, r, []string{"Ada"}, "Algo", 1)
	for n := 0; n < RegistrationSpace; n++ {
		r.numbers.claim(n)
	}

	require.ErrorIs(t, r.CheckStudent("Bob", 1), ErrRegistrationSpaceExhausted)
	_, err := r.RegisterStudent("Bob", []int{1})
	require.ErrorIs(t, err, ErrRegistrationSpaceExhausted)
	require.Empty(t, r.Students())
}

func TestWithMaxAttempts_ClampsNegative(t *testing.T) {
	r := New(WithMaxAttempts(-5))
	require.Equal(t, 0, r.numbers.maxAttempts)
}
