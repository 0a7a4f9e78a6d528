/*
Package deobf recovers a 32-byte public key from its obfuscated, 256-byte embedded form.

Note that this is NOT encryption, since it is easily reversible.
Like the xor screening in the rest of this module, this falls squarely under the obfuscation category.
It's only meant to keep the key bytes from showing up as a contiguous blob in a binary or data file.
No check is made that the recovered bytes are a valid key for any algorithm.

# How it works:

The blob is read as 128 little-endian 16-bit words.
Each of the 16 words of the key is produced by mixing two low words with a high word using XOR and OR, rotating the mixed value within 16 bits, and then applying a second high word as an XOR mask.
The rotation amount cycles between 11 and 4 bits.
Only the first 64 words take part in the mixing, the rest of the blob is padding.

# Screening:

Screen performs the opposite operation, building a blob that Deobfuscate will turn back into the given key.
The mixing step isn't one-to-one, so every call to Screen produces a different blob for the same key.
This is used for test fixtures and by the keyscreen code generator.

# General guidelines:
  - Deobfuscate only accepts blobs of exactly BlobLen bytes. Use Extend to opt in to blobs that only carry the active words.
  - All functions here are pure with respect to their inputs, and are safe to call concurrently.
*/
package deobf
