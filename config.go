package fmod

// Config collects system setup in one struct. The zero value is usable;
// nil means all defaults.
type Config struct {
	// MaxChannels is the number of virtual voices. Default 512.
	MaxChannels int32
	// Flags configure init behavior.
	Flags InitFlags
	// SampleRate overrides the mixer sample rate when nonzero.
	SampleRate int32
	// SpeakerMode overrides the mixer speaker layout when not
	// SpeakerModeDefault.
	SpeakerMode SpeakerMode
	// NumRawSpeakers sets the channel count for SpeakerModeRaw.
	NumRawSpeakers int32
}

const defaultMaxChannels = 512

// NewSystemWithConfig creates and initializes the root engine system in
// one step, applying the mixer format before Init the way the native
// API requires. Single-instance semantics are those of NewSystem.
func NewSystemWithConfig(cfg *Config) (*Handle[*System], error) {
	if cfg == nil {
		cfg = &Config{}
	}
	maxChannels := cfg.MaxChannels
	if maxChannels == 0 {
		maxChannels = defaultMaxChannels
	}

	h, err := defaultLifecycle.NewSystem()
	if err != nil {
		return nil, err
	}
	sys := h.Resource()

	if cfg.SampleRate != 0 || cfg.SpeakerMode != SpeakerModeDefault || cfg.NumRawSpeakers != 0 {
		if err := sys.SetSoftwareFormat(cfg.SampleRate, cfg.SpeakerMode, cfg.NumRawSpeakers); err != nil {
			h.Close()
			return nil, err
		}
	}
	if err := sys.Init(maxChannels, cfg.Flags); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}
