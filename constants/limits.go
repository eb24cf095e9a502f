package constants

// HeaderScanLines bounds the vendor-contact scan to the letterhead region.
const HeaderScanLines = 15

// RawTextSampleLimit caps the raw-text sample attached to the record in debug mode.
const RawTextSampleLimit = 1000
