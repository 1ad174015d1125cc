// Package outline implements the vector outlines of editable font glyphs.
//
// An outline exists in two interchangeable forms. A [Path] is a list of
// [Contour] values, each an ordered list of [Point] values, and is the form
// editors work with. A [PackedPath] stores the same information in flat
// parallel arrays and is the form used for storage, diffing and
// interpolation. [Path.AsPackedPath] and [PackedPath.AsPath] convert
// between the two without loss; whether a packed path's metadata column is
// materialized is not carried over, and [PackedPath.Equal] ignores it.
//
// # Point roles
//
// Every point is either on the outline or an off-curve control point of a
// cubic or quadratic segment. On-curve points may be marked smooth. In a
// packed path the role and smoothness are combined into a [PointType].
// Consecutive quadratic off-curve points form a TrueType-style spline with
// implied on-curve points halfway between them (see [QuadBSpline]).
//
// # Point metadata
//
// Points may carry open-ended metadata ([Attrs]). A packed path keeps
// metadata in a [PointAttributes] column that is absent until the first
// point with metadata is added, and stays materialized afterwards.
//
// # Pens
//
// Outlines are produced and consumed through two protocols. [PointPen]
// describes contours point by point and is lossless in the same sense;
// [PackedPath.DrawPoints] and [PackedPathPointPen] are its two ends. [SegmentPen] describes
// contours as drawing commands; [PackedPath.Draw] renders an outline into
// one, for example a [BezPath], and [SegmentToPointPen] feeds drawing
// commands into a point pen.
//
// # Arithmetic
//
// Outlines with the same structure can be added, subtracted and scaled,
// which is the basis of interpolation between masters. See
// [PackedPath.Add] and [PackedPath.CheckCompatible].
//
// # Indices
//
// Methods that take a contour index or a point index within a contour
// accept negative values, which count from the end. Absolute point
// indices, which count over the whole path, must not be negative.
package outline
