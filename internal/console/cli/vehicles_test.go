package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/resources"
)

// patchRecordingClient captures the vehicle patch the edit flow produces.
// The embedded Client is nil; only UpdateVehicle is exercised.
type patchRecordingClient struct {
	api.Client
	lastID    string
	lastPatch api.VehiclePatch
	calls     int
}

func (c *patchRecordingClient) UpdateVehicle(ctx context.Context, id string, patch api.VehiclePatch) (api.Vehicle, error) {
	c.calls++
	c.lastID = id
	c.lastPatch = patch
	return api.Vehicle{ID: id}, nil
}

func newEditApp(client *patchRecordingClient, input string) *App {
	return &App{
		vehicles: resources.NewVehicles(client),
		reader:   bufio.NewReader(strings.NewReader(input)),
	}
}

func TestEditVehicle_BlankAnswersKeepStoredValues(t *testing.T) {
	silencePrintln(t)
	client := &patchRecordingClient{}
	// Vehicle ID, then blank answers for Name, Brand, Type, Location,
	// Seats, Features and Status.
	app := newEditApp(client, "v1\n\n\n\n\n\n\n\n")

	app.editVehicle(context.Background())

	require.Equal(t, 1, client.calls)
	assert.Equal(t, "v1", client.lastID)
	patch := client.lastPatch
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Brand)
	assert.Nil(t, patch.VehicleType)
	assert.Nil(t, patch.Location)
	assert.Nil(t, patch.Seats)
	assert.Nil(t, patch.Features)
	assert.Nil(t, patch.Status)
}

func TestEditVehicle_SingleAnswerPatchesOnlyThatField(t *testing.T) {
	silencePrintln(t)
	client := &patchRecordingClient{}
	app := newEditApp(client, "v1\n\n\n\n\n\n\nUnavailable\n")

	app.editVehicle(context.Background())

	require.Equal(t, 1, client.calls)
	patch := client.lastPatch
	require.NotNil(t, patch.Status)
	assert.Equal(t, "Unavailable", *patch.Status)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.VehicleType)
	assert.Nil(t, patch.Seats)
}

func TestEditVehicle_BadSeatsAbortsWithoutCall(t *testing.T) {
	silencePrintln(t)
	client := &patchRecordingClient{}
	app := newEditApp(client, "v1\n\n\n\n\nlots\n")

	app.editVehicle(context.Background())

	assert.Zero(t, client.calls)
}
