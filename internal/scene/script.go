package scene

import (
	"fmt"

	"objscene/internal/camera"
	"objscene/internal/config"
	"objscene/internal/figure"
)

// Script expands scripted input segments into one Input per frame. Frames
// past the end of the script are idle. Light rate changes and pause toggles
// apply on the first frame of their segment only. With no segments the dog walks
// forward for the first half and back for the second.
func Script(segments []config.Segment, frames int) ([]Input, error) {
	if len(segments) == 0 {
		half := frames / 2
		segments = []config.Segment{
			{Frames: half, Dog: "forward"},
			{Frames: frames - half, Dog: "backward"},
		}
	}

	inputs := make([]Input, 0, frames)
	for i, seg := range segments {
		dog, err := config.ParseDrive(seg.Dog)
		if err != nil {
			return nil, fmt.Errorf("scene: segment %d: %w", i, err)
		}
		gear, err := config.ParseGear(seg.Gear)
		if err != nil {
			return nil, fmt.Errorf("scene: segment %d: %w", i, err)
		}
		var moves []camera.Direction
		for _, m := range seg.Move {
			d, err := config.ParseDirection(m)
			if err != nil {
				return nil, fmt.Errorf("scene: segment %d: %w", i, err)
			}
			moves = append(moves, d)
		}
		in := Input{Dog: dog, Move: moves, Look: seg.Look, Gear: gear}
		for n := 0; n < seg.Frames && len(inputs) < frames; n++ {
			step := in
			if n == 0 {
				step.LightRate = float32(seg.LightRate) * LightRateStep
				step.TogglePause = seg.Pause
			}
			inputs = append(inputs, step)
		}
	}
	for len(inputs) < frames {
		inputs = append(inputs, Input{Dog: figure.Idle})
	}
	return inputs, nil
}

// Simulate snapshots the scene before each input and then applies it, so
// frame 0 shows the starting state.
func (s *Scene) Simulate(inputs []Input, dt, aspect float32) []Frame {
	frames := make([]Frame, 0, len(inputs))
	for i, in := range inputs {
		frames = append(frames, s.Snapshot(i, aspect))
		s.Step(dt, in)
	}
	return frames
}
