// File: core/buffer/capabilities.go
// Author: momentics <momentics@gmail.com>
//
// Compile-time record of the capability groups Seq offers. The long
// out-bound lending variants are deliberately absent: cache storage
// moves as the window does, so no pointer can be promised for the
// manipulator's whole lifetime.

package buffer

import "github.com/momentics/hioload-seq/api"

var (
	_ api.Forward      = (*Seq[int])(nil)
	_ api.Backward     = (*Seq[int])(nil)
	_ api.ForwardBulk  = (*Seq[int])(nil)
	_ api.BackwardBulk = (*Seq[int])(nil)

	_ api.Reader[int] = (*Seq[int])(nil)
	_ api.Writer[int] = (*Seq[int])(nil)

	_ api.RefInWriter[int]     = (*Seq[int])(nil)
	_ api.RefInWriterLong[int] = (*Seq[int])(nil)
	_ api.RefInReader[int]     = (*Seq[int])(nil)
	_ api.RefInReaderLong[int] = (*Seq[int])(nil)
	_ api.RefOutWriter[int]    = (*Seq[int])(nil)
	_ api.RefOutReader[int]    = (*Seq[int])(nil)

	_ api.RefOutWriterBulk[int] = (*Seq[int])(nil)
	_ api.RefOutReaderBulk[int] = (*Seq[int])(nil)

	_ api.RawInWriterBulk  = (*Seq[int])(nil)
	_ api.RawInReaderBulk  = (*Seq[int])(nil)
	_ api.RawOutWriterBulk = (*Seq[int])(nil)
	_ api.RawOutReaderBulk = (*Seq[int])(nil)

	_ api.Flusher = (*Seq[int])(nil)
	_ api.Slurper = (*Seq[int])(nil)

	_ api.StopReader[any] = (*Seq[int])(nil)
	_ api.StopWriter[any] = (*Seq[int])(nil)
)
