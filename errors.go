package spright

import "errors"

// Sentinel errors matching the pipeline's distinct failure kinds. Call
// sites that return one wrap it with fmt.Errorf("...: %w", ErrX) to attach
// context; callers can still errors.Is against the sentinel.
var (
	// ErrInvalidInput marks a sprite or sheet whose configuration is
	// internally inconsistent (source rect outside its image, a
	// non-positive rectangle, min_width > max_width, ...). Fatal.
	ErrInvalidInput = errors.New("spright: invalid input")

	// ErrUnfittable names the failure of a sprite that cannot fit any
	// admissible slice dimension even with rotation and padding. No
	// function returns it: such a sprite is dropped with a plain warning
	// string and packing continues with the remainder.
	ErrUnfittable = errors.New("spright: sprite does not fit any admissible slice size")

	// ErrNotAllSpritesPacked is raised when the packer could not place
	// every unique sprite within the configured sheet/slice count.
	ErrNotAllSpritesPacked = errors.New("spright: not all sprites were packed")

	// ErrHullBudgetExceeded names the case where hull reduction cannot
	// shrink a polygon below its vertex budget. No function returns or
	// reports it; such a hull is kept with its extra vertices.
	ErrHullBudgetExceeded = errors.New("spright: hull vertex budget exceeded")

	// ErrWorker names a failed parallel task. No function returns it:
	// scheduler.ForEachParallel re-panics on the submitter with the first
	// captured panic value itself.
	ErrWorker = errors.New("spright: worker task failed")
)
