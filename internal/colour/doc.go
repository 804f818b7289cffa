// Package colour provides the RGB colour model used by palette.
//
// A colour is stored as three 8-bit channels. Every colour handed to a
// renderer travels as an Info, which pairs the channels with their canonical
// hex text so the two can never disagree.
//
// # Hex Codec
//
// Decode and Encode convert between six-digit hex text and RGB values:
//
//	c, err := colour.Decode("#1e90ff")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(colour.Encode(c)) // 1e90ff
//
// A single leading '#' is optional and input is case-insensitive. Encoded
// text is always lowercase and carries no '#'.
//
// # Parse Policies
//
// Two policies are available for input that is not six clean hex digits:
//
//   - PolicyStrict: anything other than exactly six hex digits is rejected.
//   - PolicyLenient: two-digit chunks that do not parse are dropped and the
//     text is accepted when exactly three chunks remain.
//
// Both policies fail with an error matching ErrMalformedHex.
package colour
