package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	dishID := kernel.NewUUID()
	total := int64(240)

	cmd, err := commands.NewCreateOrderCommand(customerID, dishID, "  12 MG Road  ", &total)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, dishID, cmd.DishID())
	assert.Equal(t, "12 MG Road", cmd.DeliveryAddress())
	clientTotal, ok := cmd.ClientTotal()
	assert.True(t, ok)
	assert.Equal(t, int64(240), clientTotal)
}

func TestNewCreateOrderCommand_WithoutClientTotal(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 MG Road", nil)

	require.NoError(t, err)
	_, ok := cmd.ClientTotal()
	assert.False(t, ok)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	negative := int64(-5)

	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, " ", &negative)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateOrderCommand{}

	err := cmd.Validate()

	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
