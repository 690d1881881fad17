package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Parallel()

	require.Equal(t, "129.90 lei", Money(129.9))
	require.Equal(t, "0.00 lei", Money(0))
	require.Equal(t, "20.00 lei", Money(20))
	require.Equal(t, "84.99 lei", Money(84.99))
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pending", StatusLabel("PENDING"))
	require.Equal(t, "Completed", StatusLabel("COMPLETED"))
	require.Equal(t, "Canceled", StatusLabel("CANCELED"))
	require.Equal(t, "SHIPPED", StatusLabel("SHIPPED"))
}

func TestPageAuthed(t *testing.T) {
	t.Parallel()

	var p Page
	require.False(t, p.Authed())
	require.False(t, p.IsAdmin())

	p.User = &SessionUser{ID: 1, Role: "USER"}
	require.True(t, p.Authed())
	require.False(t, p.IsAdmin())

	p.User.Role = "ADMIN"
	require.True(t, p.IsAdmin())
}
