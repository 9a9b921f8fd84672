package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mcoo/local-app/internal/model"
)

// parseElementFields reads key=value pairs into an ElementInfo and the filter
// selecting the keys that were present. A literal \n in text values becomes
// a line break.
func parseElementFields(args []string) (model.ElementInfo, model.ElementFilter, error) {
	var (
		info   model.ElementInfo
		filter model.ElementFilter
	)

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return info, filter, fmt.Errorf("invalid field %q, expected key=value", arg)
		}

		var err error
		switch strings.ToLower(key) {
		case "id":
			return info, filter, fmt.Errorf("element id cannot be changed")
		case "type":
			info.Type, filter.Type = value, true
		case "label":
			info.Label, filter.Label = unescape(value), true
		case "body":
			info.Body, filter.Body = unescape(value), true
		case "color":
			info.Color, filter.Color = value, true
		case "x":
			info.X, err = strconv.Atoi(value)
			filter.X = true
		case "y":
			info.Y, err = strconv.Atoi(value)
			filter.Y = true
		case "w":
			info.W, err = strconv.Atoi(value)
			filter.W = true
		case "h":
			info.H, err = strconv.Atoi(value)
			filter.H = true
		case "rotation":
			info.Rotation, err = parseFinite(value)
			filter.Rotation = true
		case "opacity":
			info.Opacity, err = parseFinite(value)
			if err == nil && (info.Opacity < 0 || info.Opacity > 1) {
				err = fmt.Errorf("must be between 0 and 1")
			}
			filter.Opacity = true
		case "visible":
			info.Visible, err = strconv.ParseBool(value)
			filter.Visible = true
		case "locked":
			info.Locked, err = strconv.ParseBool(value)
			filter.Locked = true
		default:
			return info, filter, fmt.Errorf("unknown element field %q", key)
		}
		if err != nil {
			return info, filter, fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	return info, filter, nil
}

// mergeFields overlays the fields selected by over onto base.
func mergeFields(base model.ElementInfo, baseFilter model.ElementFilter, over model.ElementInfo, overFilter model.ElementFilter) (model.ElementInfo, model.ElementFilter) {
	el := model.Element{}
	baseFilter.Apply(&el, base)
	overFilter.Apply(&el, over)

	info := model.ElementToInfo(el)
	info.Spawn = base.Spawn
	return info, model.ElementFilter{
		Type: baseFilter.Type || overFilter.Type, Label: baseFilter.Label || overFilter.Label,
		Body: baseFilter.Body || overFilter.Body, X: baseFilter.X || overFilter.X,
		Y: baseFilter.Y || overFilter.Y, W: baseFilter.W || overFilter.W, H: baseFilter.H || overFilter.H,
		Rotation: baseFilter.Rotation || overFilter.Rotation, Color: baseFilter.Color || overFilter.Color,
		Opacity: baseFilter.Opacity || overFilter.Opacity, Visible: baseFilter.Visible || overFilter.Visible,
		Locked: baseFilter.Locked || overFilter.Locked,
	}
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// parseFinite parses a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := parseFinite(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = f
	}
	return out, nil
}
