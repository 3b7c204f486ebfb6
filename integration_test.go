package rfid_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/simulator"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

var (
	tagA = inventory.Tag{RSSI: 80, EPC: []byte{0xE2, 0x00, 0x00, 0x17, 0x22, 0x09}}
	tagB = inventory.Tag{RSSI: 62, EPC: []byte{0x30, 0x08, 0x33, 0xB2}}
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestE2E_Session configures a reader, reads it back and scans for a tag,
// capturing the whole session to a protocol log.
func TestE2E_Session(t *testing.T) {
	ctx := testContext(t)

	sim := simulator.New(simulator.Config{
		Antenna:      3,
		Tags:         []inventory.Tag{tagA, tagB},
		VersionMajor: 3,
		VersionMinor: 10,
	})

	path := filepath.Join(t.TempDir(), "session.rlog")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)

	sessionID := log.NewSessionID()
	client := reader.New(sim,
		reader.WithPollAttempts(100),
		reader.WithLogger(logger, sessionID),
		reader.WithPortName("sim"),
		reader.WithSearch([]byte{0xE2, 0x00}),
	)

	require.NoError(t, client.SetBuzzer(ctx, 0))
	require.NoError(t, client.SetPower(ctx, 20))
	require.NoError(t, client.SetScanTime(ctx, 50))

	state := sim.State()
	assert.Equal(t, uint8(20), state.Power)
	assert.Equal(t, uint8(50), state.ScanTime)
	assert.False(t, state.Buzzer)

	info, err := client.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3.10", info.Version())
	assert.Equal(t, uint8(20), info.Power)
	assert.Equal(t, uint8(50), info.ScanTime)

	report, err := client.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), report.Antenna)
	require.Len(t, report.Tags, 2)
	assert.Equal(t, tagA.EPC, report.Tags[0].EPC)
	assert.Equal(t, []int{0}, report.Found([]byte{0xE2, 0x00}))

	var out bytes.Buffer
	require.NoError(t, inventory.Format(&out, report, []byte{0xE2, 0x00}))
	assert.Contains(t, out.String(), "<Inventory Data: Antenna=3, #Tags=2>")
	assert.Contains(t, out.String(), "[1] [*FOUND*] <Tag: rssi=80")

	require.NoError(t, logger.Close())

	events := readEvents(t, path)
	var commands, responses, frames, inventories int
	for _, e := range events {
		assert.Equal(t, sessionID, e.SessionID)
		assert.Equal(t, "sim", e.Port)
		switch {
		case e.Command != nil:
			commands++
		case e.Response != nil:
			responses++
			assert.Equal(t, wire.StatusSuccess, e.Response.Status)
		case e.Frame != nil:
			frames++
		case e.Inventory != nil:
			inventories++
			require.Len(t, e.Inventory.Tags, 2)
			assert.True(t, e.Inventory.Tags[0].Found)
			assert.False(t, e.Inventory.Tags[1].Found)
		}
	}
	assert.Equal(t, 5, commands)
	assert.Equal(t, 5, responses)
	assert.Equal(t, 10, frames)
	assert.Equal(t, 1, inventories)
}

// TestE2E_EmptyField reports the antenna with no tags and does not treat
// the reader's no-tag status as a failure.
func TestE2E_EmptyField(t *testing.T) {
	ctx := testContext(t)

	sim := simulator.New(simulator.Config{Antenna: 4})
	client := reader.New(sim, reader.WithPollAttempts(100))

	resp, err := client.Exec(ctx, wire.CmdTagInventory, reader.DefaultInventoryParams.Payload()...)
	require.NoError(t, err)
	assert.Equal(t, wire.StatusNoTag, resp.Status)

	report, err := client.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), report.Antenna)
	assert.Empty(t, report.Tags)

	sim.SetTags(tagB)
	report, err = client.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, report.Tags, 1)
	assert.Equal(t, "300833B2", report.Tags[0].EPCString())
}

// TestE2E_Recovery checks that a lost or damaged reply fails only the
// exchange it belongs to.
func TestE2E_Recovery(t *testing.T) {
	ctx := testContext(t)

	sim := simulator.New(simulator.Config{Tags: []inventory.Tag{tagA}})
	client := reader.New(sim, reader.WithPollAttempts(50))

	sim.InjectFault(simulator.FaultSilent)
	_, err := client.Info(ctx)
	assert.True(t, errors.Is(err, transport.ErrTimeout), "got %v", err)

	sim.InjectFault(simulator.FaultCorrupt)
	_, err = client.Inventory(ctx)
	assert.True(t, errors.Is(err, wire.ErrChecksumMismatch), "got %v", err)

	report, err := client.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, report.Tags, 1)
}

// TestE2E_Addressing moves the reader to a new address and talks to it there.
func TestE2E_Addressing(t *testing.T) {
	ctx := testContext(t)

	sim := simulator.New(simulator.Config{})
	broadcast := reader.New(sim, reader.WithPollAttempts(50))

	resp, err := broadcast.Exec(ctx, wire.CmdSetReaderAddress, 0x05)
	require.NoError(t, err)
	assert.Equal(t, wire.StatusSuccess, resp.Status)
	assert.Equal(t, uint8(0x05), sim.State().Address)

	direct := reader.New(sim, reader.WithAddress(0x05), reader.WithPollAttempts(50))
	require.NoError(t, direct.SetPower(ctx, 12))
	assert.Equal(t, uint8(12), sim.State().Power)

	other := reader.New(sim, reader.WithAddress(0x07), reader.WithPollAttempts(50))
	err = other.SetPower(ctx, 5)
	assert.True(t, errors.Is(err, transport.ErrTimeout), "got %v", err)
	assert.Equal(t, uint8(12), sim.State().Power)
}

// TestE2E_InvalidParameters never reaches the reader.
func TestE2E_InvalidParameters(t *testing.T) {
	ctx := testContext(t)

	sim := simulator.New(simulator.Config{})
	client := reader.New(sim, reader.WithPollAttempts(50))

	assert.ErrorIs(t, client.SetPower(ctx, 31), reader.ErrInvalidParameter)
	assert.ErrorIs(t, client.SetScanTime(ctx, 2), reader.ErrInvalidParameter)
	assert.Empty(t, sim.Requests())
}

func readEvents(t *testing.T, path string) []log.Event {
	t.Helper()
	r, err := log.NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var events []log.Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}
