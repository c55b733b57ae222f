// Package encoding serializes finalized frames into the two legacy text formats
// produced by reflbin.
//
// # Formats
//
// ICP is a wrapped comma-separated matrix. Every frame row becomes one record:
// decimal values joined by commas, each physical line indented by a single
// space and kept within ICPLineWidth characters. When a value does not fit, the
// value is moved to the next line whole, so tokens are never split. Header and
// per-point metadata lines are copied through verbatim.
//
// VTK is a legacy ASCII structured-points volume. Values are quantized from
// counts into 16-bit codes with Quantize and written space-separated. The
// header carries the grid dimensions and the total point count, which are only
// known once the whole scan has been read; the encoder reserves fixed-width
// placeholder spans for them and patches the buffered document in Finish.
//
// # Usage
//
//	enc, err := encoding.NewEncoder(format.VTK, out, "scan.psd")
//	if err != nil {
//		return err
//	}
//	for each frame {
//		if err := enc.WriteFrame(f); err != nil {
//			return err
//		}
//	}
//	return enc.Finish(encoding.Shape{Columns: c, Rows: r, Points: p})
//
// Encoders are not safe for concurrent use.
package encoding
