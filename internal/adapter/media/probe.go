package media

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func probeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbe([]byte(out))
}

func parseProbe(data []byte) (float64, error) {
	var p probeOutput
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}
	if p.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe output has no duration")
	}
	d, err := strconv.ParseFloat(p.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", p.Format.Duration, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}
