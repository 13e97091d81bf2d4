package fmod

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/soniccore/fmod-go/abi"
)

func TestCatchPanicPassesThroughResults(t *testing.T) {
	require.Equal(t, abi.OK, catchPanic("test", func() error { return nil }))
	require.Equal(t, abi.ErrNotReady, catchPanic("test", func() error { return ErrNotReady }))
	require.Equal(t, abi.ErrInternalWrapper,
		catchPanic("test", func() error { return errors.New("no code") }))
}

func TestCatchPanicContainsPanics(t *testing.T) {
	res := catchPanic("test", func() error { panic("callback exploded") })
	require.Equal(t, abi.ErrInternalWrapper, res)

	res = catchPanic("test", func() error { panic(errors.New("typed panic")) })
	require.Equal(t, abi.ErrInternalWrapper, res)
}

func TestRegistry(t *testing.T) {
	var r registry[string]

	_, ok := r.load(1)
	require.False(t, ok)

	r.store(1, "one")
	r.store(2, "two")
	v, ok := r.load(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	r.delete(1)
	_, ok = r.load(1)
	require.False(t, ok)
	_, ok = r.load(2)
	require.True(t, ok)
	r.delete(2)
}

func TestGoString(t *testing.T) {
	require.Equal(t, "", goString(0))

	buf := append([]byte("hello"), 0)
	require.Equal(t, "hello", goString(uintptr(unsafe.Pointer(&buf[0]))))

	empty := []byte{0}
	require.Equal(t, "", goString(uintptr(unsafe.Pointer(&empty[0]))))
}

type recordingSystemCallback struct {
	kinds []SystemCallbackMask
	fail  error
}

func (c *recordingSystemCallback) Notification(sys *System, kind SystemCallbackMask, d1, d2 uintptr) error {
	c.kinds = append(c.kinds, kind)
	return c.fail
}

func TestSystemTrampolineDispatch(t *testing.T) {
	installMock(t)
	const raw = uintptr(0x2000)
	t.Cleanup(func() { systemCallbacks.delete(raw) })

	// No registration: queued notifications after an uninstall are
	// dropped, not failed.
	require.Equal(t, abi.OK, systemTrampoline(raw, uint32(SystemCallbackDeviceLost), 0, 0, 0))

	cb := &recordingSystemCallback{}
	systemCallbacks.store(raw, cb)
	require.Equal(t, abi.OK,
		systemTrampoline(raw, uint32(SystemCallbackDeviceListChanged), 0, 0, 0))
	require.Equal(t, []SystemCallbackMask{SystemCallbackDeviceListChanged}, cb.kinds)

	cb.fail = ErrInvalidParam
	require.Equal(t, abi.ErrInvalidParam,
		systemTrampoline(raw, uint32(SystemCallbackPostMix), 0, 0, 0))
}

type recordingChannelCallback struct {
	ChannelCallbackBase
	events []string
}

func (c *recordingChannelCallback) End(ch *Channel) error {
	c.events = append(c.events, "end")
	return nil
}

func (c *recordingChannelCallback) SyncPoint(ch *Channel, index int32) error {
	c.events = append(c.events, "sync")
	return nil
}

func TestChannelControlTrampolineDispatch(t *testing.T) {
	installMock(t)
	const raw = uintptr(0x3000)
	t.Cleanup(func() { channelCallbacks.delete(raw) })

	cb := &recordingChannelCallback{}
	channelCallbacks.store(raw, cb)

	res := channelControlTrampoline(raw, int32(channelControlChannel),
		int32(channelCallbackSyncPoint), 5, 0)
	require.Equal(t, abi.OK, res)

	res = channelControlTrampoline(raw, int32(channelControlChannel),
		int32(channelCallbackEnd), 0, 0)
	require.Equal(t, abi.OK, res)
	require.Equal(t, []string{"sync", "end"}, cb.events)

	// The end notification drops the registration.
	_, ok := channelCallbacks.load(raw)
	require.False(t, ok)
}

func TestChannelControlTrampolineOcclusion(t *testing.T) {
	installMock(t)
	const raw = uintptr(0x3100)
	t.Cleanup(func() { channelCallbacks.delete(raw) })

	damp := &struct{ direct, reverb float32 }{direct: 1, reverb: 1}
	cb := &occlusionHalver{}
	channelCallbacks.store(raw, cb)

	res := channelControlTrampoline(raw, int32(channelControlChannel),
		int32(channelCallbackOcclusion),
		uintptr(unsafe.Pointer(&damp.direct)), uintptr(unsafe.Pointer(&damp.reverb)))
	require.Equal(t, abi.OK, res)
	require.Equal(t, float32(0.5), damp.direct)
	require.Equal(t, float32(0.5), damp.reverb)
}

type occlusionHalver struct {
	ChannelCallbackBase
}

func (occlusionHalver) Occlusion(ch *Channel, direct, reverb *float32) error {
	*direct /= 2
	*reverb /= 2
	return nil
}

func TestTrampolineUnknownDiscriminants(t *testing.T) {
	installMock(t)
	const raw = uintptr(0x3200)
	t.Cleanup(func() { channelCallbacks.delete(raw) })
	channelCallbacks.store(raw, &recordingChannelCallback{})

	// Unknown control type.
	require.Equal(t, abi.ErrInvalidParam,
		channelControlTrampoline(raw, 99, int32(channelCallbackEnd), 0, 0))
	// Unknown notification kind for a known control type.
	require.Equal(t, abi.ErrInvalidParam,
		channelControlTrampoline(raw, int32(channelControlChannel), 99, 0, 0))
}

func TestTrampolinePanicContainment(t *testing.T) {
	installMock(t)
	const raw = uintptr(0x3300)
	t.Cleanup(func() { channelCallbacks.delete(raw) })
	channelCallbacks.store(raw, panickyChannelCallback{})

	res := channelControlTrampoline(raw, int32(channelControlChannel),
		int32(channelCallbackSyncPoint), 0, 0)
	require.Equal(t, abi.ErrInternalWrapper, res)
}

type panickyChannelCallback struct {
	ChannelCallbackBase
}

func (panickyChannelCallback) SyncPoint(*Channel, int32) error {
	panic("sync point handler bug")
}

func TestNextCallbackTokenUnique(t *testing.T) {
	seen := make(map[uintptr]bool)
	for i := 0; i < 100; i++ {
		tok := nextCallbackToken()
		require.False(t, seen[tok])
		require.NotZero(t, tok)
		seen[tok] = true
	}
}
