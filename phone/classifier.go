package phone

import (
	"golang.org/x/text/unicode/norm"

	"github.com/vortex-fintech/zimphone/logger"
)

// Observer receives classification outcomes, for example to feed metrics.
type Observer interface {
	ObserveClassification(t NumberType)
	ObserveFormatFailure(op string)
}

// Options configures a Classifier. The zero value is usable.
type Options struct {
	Logger   logger.Interface
	Observer Observer

	// FoldWidth applies NFKC before sanitizing so that full-width digits and
	// signs are read as their ASCII forms.
	FoldWidth bool
}

// Classifier exposes the package operations with logging, observation and
// optional width folding. It holds no mutable state and is safe for
// concurrent use when its Logger and Observer are.
type Classifier struct {
	log      logger.Interface
	obs      Observer
	foldWide bool
}

// NewClassifier builds a Classifier. A nil Logger logs nothing and a nil
// Observer is skipped.
func NewClassifier(opts Options) *Classifier {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Classifier{
		log:      log.With("component", "phone.classifier"),
		obs:      opts.Observer,
		foldWide: opts.FoldWidth,
	}
}

func (c *Classifier) prepare(raw string) string {
	if c.foldWide && raw != "" {
		raw = norm.NFKC.String(raw)
	}
	return raw
}

// classify prepares raw and records its type exactly once per public call.
func (c *Classifier) classify(raw string) (string, NumberType) {
	raw = c.prepare(raw)
	t := NumberTypeOf(raw)
	c.log.Debugw("number classified", "number", Mask(raw), "type", t)
	if c.obs != nil {
		c.obs.ObserveClassification(t)
	}
	return raw, t
}

func (c *Classifier) formatFailed(op, raw string, err error) {
	c.log.Warnw("number format failed", "op", op, "number", Mask(raw), "error", err)
	if c.obs != nil {
		c.obs.ObserveFormatFailure(op)
	}
}

// IsValid is the package IsValid, observed.
func (c *Classifier) IsValid(raw string) bool {
	_, t := c.classify(raw)
	return t != Invalid
}

// IsValidValue is IsValid for dynamically typed input.
func (c *Classifier) IsValidValue(v any) bool {
	return c.IsValid(ValueOf(v))
}

// NumberType classifies raw. Mobile wins over landline.
func (c *Classifier) NumberType(raw string) NumberType {
	_, t := c.classify(raw)
	return t
}

// IsMobile reports whether raw classifies as Mobile.
func (c *Classifier) IsMobile(raw string) bool { return c.NumberType(raw) == Mobile }

// IsLandline reports whether raw classifies as Landline.
func (c *Classifier) IsLandline(raw string) bool { return c.NumberType(raw) == Landline }

// FormatLocal renders raw as "0" plus the core. Failures are logged as op "local".
func (c *Classifier) FormatLocal(raw string) (string, error) {
	raw, _ = c.classify(raw)
	out, err := FormatLocal(raw)
	if err != nil {
		c.formatFailed("local", raw, err)
	}
	return out, err
}

// FormatInternational renders raw as "+263" plus the core.
func (c *Classifier) FormatInternational(raw string) (string, error) {
	raw, _ = c.classify(raw)
	out, err := FormatInternational(raw)
	if err != nil {
		c.formatFailed("international", raw, err)
	}
	return out, err
}

// FormatBoth returns both renderings of raw.
func (c *Classifier) FormatBoth(raw string) (Formats, error) {
	raw, _ = c.classify(raw)
	out, err := FormatBoth(raw)
	if err != nil {
		c.formatFailed("both", raw, err)
	}
	return out, err
}

// FormatDisplay lays raw out in style. Failures are logged as op
// "display_<style>".
func (c *Classifier) FormatDisplay(raw string, style DisplayStyle) (string, error) {
	raw, _ = c.classify(raw)
	out, err := FormatDisplay(raw, style)
	if err != nil {
		c.formatFailed("display_"+style.String(), raw, err)
	}
	return out, err
}

// DetectCarrier names the network of a mobile number.
func (c *Classifier) DetectCarrier(raw string) (string, bool) {
	raw, t := c.classify(raw)
	if t != Mobile {
		return "", false
	}
	return DetectCarrier(raw)
}

// DetectArea names the city of a landline number.
func (c *Classifier) DetectArea(raw string) (string, bool) {
	raw, t := c.classify(raw)
	if t != Landline {
		return "", false
	}
	return DetectArea(raw)
}

// Info is GetInfo for raw, observed once.
func (c *Classifier) Info(raw string) Info {
	raw, _ = c.classify(raw)
	return GetInfo(raw)
}

// CarrierPrefixes returns a copy of the carrier prefix table.
func (c *Classifier) CarrierPrefixes() map[string][]string { return CarrierPrefixes() }

// AreaCodes returns a copy of the area code table.
func (c *Classifier) AreaCodes() map[string]string { return AreaCodes() }
