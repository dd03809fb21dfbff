package bladed

import "github.com/robert-malhotra/go-bladed/internal/campbell"

// Public aliases for the Campbell/modal data types.

// Campbell is the combined Campbell-diagram data of one run.
type Campbell = campbell.Diagram

// ModeTrack is one mode tracked across a sweep of operating points.
type ModeTrack = campbell.Track

// ModePoint is one operating point of a tracked mode.
type ModePoint = campbell.Point

// ShapeKey addresses one participation-shape bucket by operating point and
// mode.
type ShapeKey = campbell.ShapeKey

// Participation is one row of a participation shape.
type Participation = campbell.Participation
