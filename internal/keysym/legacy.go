package keysym

// Legacy keysyms from keysymdef.h that predate the 0x01000000 Unicode block:
// Latin-2/3/4, Kana, Arabic, Cyrillic, Greek, Technical, Special,
// Publishing, APL, Hebrew, Thai and Korean. X servers still hand these out
// for non-US layouts.

// span maps a run of consecutive keysyms onto consecutive code points.
type span struct {
	first, last uint32
	cp          uint32
}

var legacySpans = []span{
	{0x05c1, 0x05da, 0x0621}, // Arabic hamza .. ghain
	{0x05e0, 0x05f2, 0x0640}, // Arabic tatweel .. sukun
	{0x07c1, 0x07d1, 0x0391}, // Greek ALPHA .. RHO
	{0x07d4, 0x07d9, 0x03a4}, // Greek TAU .. OMEGA
	{0x07e1, 0x07f1, 0x03b1}, // Greek alpha .. rho
	{0x07f4, 0x07f9, 0x03c4}, // Greek tau .. omega
	{0x0ce0, 0x0cfa, 0x05d0}, // Hebrew aleph .. taw
	{0x0da1, 0x0dda, 0x0e01}, // Thai kokai .. phinthu
	{0x0ddf, 0x0df9, 0x0e3f}, // Thai baht .. lekkao
	{0x0ea1, 0x0ed3, 0x3131}, // Hangul compatibility jamo Kiyeog .. I
	{0x0ed4, 0x0eee, 0x11a8}, // Hangul final Kiyeog .. Hieuh
}

// cyrillicKOI8 lists the lower case Cyrillic letters in KOI8 order, as laid
// out at 0x06c0. Upper case follows at 0x06e0.
var cyrillicKOI8 = [32]uint32{
	0x044e, 0x0430, 0x0431, 0x0446, 0x0434, 0x0435, 0x0444, 0x0433,
	0x0445, 0x0438, 0x0439, 0x043a, 0x043b, 0x043c, 0x043d, 0x043e,
	0x043f, 0x044f, 0x0440, 0x0441, 0x0442, 0x0443, 0x0436, 0x0432,
	0x044c, 0x044b, 0x0437, 0x0448, 0x044d, 0x0449, 0x0447, 0x044a,
}

var legacySingles = map[uint32]uint32{
	// Latin-2
	0x01a1: 0x0104, 0x01a2: 0x02d8, 0x01a3: 0x0141, 0x01a5: 0x013d,
	0x01a6: 0x015a, 0x01a9: 0x0160, 0x01aa: 0x015e, 0x01ab: 0x0164,
	0x01ac: 0x0179, 0x01ae: 0x017d, 0x01af: 0x017b, 0x01b1: 0x0105,
	0x01b2: 0x02db, 0x01b3: 0x0142, 0x01b5: 0x013e, 0x01b6: 0x015b,
	0x01b7: 0x02c7, 0x01b9: 0x0161, 0x01ba: 0x015f, 0x01bb: 0x0165,
	0x01bc: 0x017a, 0x01bd: 0x02dd, 0x01be: 0x017e, 0x01bf: 0x017c,
	0x01c0: 0x0154, 0x01c3: 0x0102, 0x01c5: 0x0139, 0x01c6: 0x0106,
	0x01c8: 0x010c, 0x01ca: 0x0118, 0x01cc: 0x011a, 0x01cf: 0x010e,
	0x01d0: 0x0110, 0x01d1: 0x0143, 0x01d2: 0x0147, 0x01d5: 0x0150,
	0x01d8: 0x0158, 0x01d9: 0x016e, 0x01db: 0x0170, 0x01de: 0x0162,
	0x01e0: 0x0155, 0x01e3: 0x0103, 0x01e5: 0x013a, 0x01e6: 0x0107,
	0x01e8: 0x010d, 0x01ea: 0x0119, 0x01ec: 0x011b, 0x01ef: 0x010f,
	0x01f0: 0x0111, 0x01f1: 0x0144, 0x01f2: 0x0148, 0x01f5: 0x0151,
	0x01f8: 0x0159, 0x01f9: 0x016f, 0x01fb: 0x0171, 0x01fe: 0x0163,
	0x01ff: 0x02d9,

	// Latin-3
	0x02a1: 0x0126, 0x02a6: 0x0124, 0x02a9: 0x0130, 0x02ab: 0x011e,
	0x02ac: 0x0134, 0x02b1: 0x0127, 0x02b6: 0x0125, 0x02b9: 0x0131,
	0x02bb: 0x011f, 0x02bc: 0x0135, 0x02c5: 0x010a, 0x02c6: 0x0108,
	0x02d5: 0x0120, 0x02d8: 0x011c, 0x02dd: 0x016c, 0x02de: 0x015c,
	0x02e5: 0x010b, 0x02e6: 0x0109, 0x02f5: 0x0121, 0x02f8: 0x011d,
	0x02fd: 0x016d, 0x02fe: 0x015d,

	// Latin-4
	0x03a2: 0x0138, 0x03a3: 0x0156, 0x03a5: 0x0128, 0x03a6: 0x013b,
	0x03aa: 0x0112, 0x03ab: 0x0122, 0x03ac: 0x0166, 0x03b3: 0x0157,
	0x03b5: 0x0129, 0x03b6: 0x013c, 0x03ba: 0x0113, 0x03bb: 0x0123,
	0x03bc: 0x0167, 0x03bd: 0x014a, 0x03bf: 0x014b, 0x03c0: 0x0100,
	0x03c7: 0x012e, 0x03cc: 0x0116, 0x03cf: 0x012a, 0x03d1: 0x0145,
	0x03d2: 0x014c, 0x03d3: 0x0136, 0x03d9: 0x0172, 0x03dd: 0x0168,
	0x03de: 0x016a, 0x03e0: 0x0101, 0x03e7: 0x012f, 0x03ec: 0x0117,
	0x03ef: 0x012b, 0x03f1: 0x0146, 0x03f2: 0x014d, 0x03f3: 0x0137,
	0x03f9: 0x0173, 0x03fd: 0x0169, 0x03fe: 0x016b,

	// Kana
	0x047e: 0x203e, 0x04a1: 0x3002, 0x04a2: 0x300c, 0x04a3: 0x300d,
	0x04a4: 0x3001, 0x04a5: 0x30fb, 0x04a6: 0x30f2, 0x04a7: 0x30a1,
	0x04a8: 0x30a3, 0x04a9: 0x30a5, 0x04aa: 0x30a7, 0x04ab: 0x30a9,
	0x04ac: 0x30e3, 0x04ad: 0x30e5, 0x04ae: 0x30e7, 0x04af: 0x30c3,
	0x04b0: 0x30fc, 0x04b1: 0x30a2, 0x04b2: 0x30a4, 0x04b3: 0x30a6,
	0x04b4: 0x30a8, 0x04b5: 0x30aa, 0x04b6: 0x30ab, 0x04b7: 0x30ad,
	0x04b8: 0x30af, 0x04b9: 0x30b1, 0x04ba: 0x30b3, 0x04bb: 0x30b5,
	0x04bc: 0x30b7, 0x04bd: 0x30b9, 0x04be: 0x30bb, 0x04bf: 0x30bd,
	0x04c0: 0x30bf, 0x04c1: 0x30c1, 0x04c2: 0x30c4, 0x04c3: 0x30c6,
	0x04c4: 0x30c8, 0x04c5: 0x30ca, 0x04c6: 0x30cb, 0x04c7: 0x30cc,
	0x04c8: 0x30cd, 0x04c9: 0x30ce, 0x04ca: 0x30cf, 0x04cb: 0x30d2,
	0x04cc: 0x30d5, 0x04cd: 0x30d8, 0x04ce: 0x30db, 0x04cf: 0x30de,
	0x04d0: 0x30df, 0x04d1: 0x30e0, 0x04d2: 0x30e1, 0x04d3: 0x30e2,
	0x04d4: 0x30e4, 0x04d5: 0x30e6, 0x04d6: 0x30e8, 0x04d7: 0x30e9,
	0x04d8: 0x30ea, 0x04d9: 0x30eb, 0x04da: 0x30ec, 0x04db: 0x30ed,
	0x04dc: 0x30ef, 0x04dd: 0x30f3, 0x04de: 0x309b, 0x04df: 0x309c,

	// Arabic punctuation
	0x05ac: 0x060c, 0x05bb: 0x061b, 0x05bf: 0x061f,

	// Cyrillic and Serbian, Macedonian, Ukrainian, Byelorussian letters
	0x06a1: 0x0452, 0x06a2: 0x0453, 0x06a3: 0x0451, 0x06a4: 0x0454,
	0x06a5: 0x0455, 0x06a6: 0x0456, 0x06a7: 0x0457, 0x06a8: 0x0458,
	0x06a9: 0x0459, 0x06aa: 0x045a, 0x06ab: 0x045b, 0x06ac: 0x045c,
	0x06ad: 0x0491, 0x06ae: 0x045e, 0x06af: 0x045f, 0x06b0: 0x2116,
	0x06b1: 0x0402, 0x06b2: 0x0403, 0x06b3: 0x0401, 0x06b4: 0x0404,
	0x06b5: 0x0405, 0x06b6: 0x0406, 0x06b7: 0x0407, 0x06b8: 0x0408,
	0x06b9: 0x0409, 0x06ba: 0x040a, 0x06bb: 0x040b, 0x06bc: 0x040c,
	0x06bd: 0x0490, 0x06be: 0x040e, 0x06bf: 0x040f,

	// Greek accented letters and sigma
	0x07a1: 0x0386, 0x07a2: 0x0388, 0x07a3: 0x0389, 0x07a4: 0x038a,
	0x07a5: 0x03aa, 0x07a7: 0x038c, 0x07a8: 0x038e, 0x07a9: 0x03ab,
	0x07ab: 0x038f, 0x07ae: 0x0385, 0x07af: 0x2015, 0x07b1: 0x03ac,
	0x07b2: 0x03ad, 0x07b3: 0x03ae, 0x07b4: 0x03af, 0x07b5: 0x03ca,
	0x07b6: 0x0390, 0x07b7: 0x03cc, 0x07b8: 0x03cd, 0x07b9: 0x03cb,
	0x07ba: 0x03b0, 0x07bb: 0x03ce, 0x07d2: 0x03a3, 0x07f2: 0x03c3,
	0x07f3: 0x03c2,

	// Technical
	0x08a1: 0x23b7, 0x08a2: 0x250c, 0x08a3: 0x2500, 0x08a4: 0x2320,
	0x08a5: 0x2321, 0x08a6: 0x2502, 0x08a7: 0x23a1, 0x08a8: 0x23a3,
	0x08a9: 0x23a4, 0x08aa: 0x23a6, 0x08ab: 0x239b, 0x08ac: 0x239d,
	0x08ad: 0x239e, 0x08ae: 0x23a0, 0x08af: 0x23a8, 0x08b0: 0x23ac,
	0x08bc: 0x2264, 0x08bd: 0x2260, 0x08be: 0x2265, 0x08bf: 0x222b,
	0x08c0: 0x2234, 0x08c1: 0x221d, 0x08c2: 0x221e, 0x08c5: 0x2207,
	0x08c8: 0x223c, 0x08c9: 0x2243, 0x08cd: 0x21d4, 0x08ce: 0x21d2,
	0x08cf: 0x2261, 0x08d6: 0x221a, 0x08da: 0x2282, 0x08db: 0x2283,
	0x08dc: 0x2229, 0x08dd: 0x222a, 0x08de: 0x2227, 0x08df: 0x2228,
	0x08ef: 0x2202, 0x08f6: 0x0192, 0x08fb: 0x2190, 0x08fc: 0x2191,
	0x08fd: 0x2192, 0x08fe: 0x2193,

	// Special
	0x09e0: 0x25c6, 0x09e1: 0x2592, 0x09e2: 0x2409, 0x09e3: 0x240c,
	0x09e4: 0x240d, 0x09e5: 0x240a, 0x09e8: 0x2424, 0x09e9: 0x240b,
	0x09ea: 0x2518, 0x09eb: 0x2510, 0x09ec: 0x250c, 0x09ed: 0x2514,
	0x09ee: 0x253c, 0x09ef: 0x23ba, 0x09f0: 0x23bb, 0x09f1: 0x2500,
	0x09f2: 0x23bc, 0x09f3: 0x23bd, 0x09f4: 0x251c, 0x09f5: 0x2524,
	0x09f6: 0x2534, 0x09f7: 0x252c, 0x09f8: 0x2502,

	// Publishing
	0x0aa1: 0x2003, 0x0aa2: 0x2002, 0x0aa3: 0x2004, 0x0aa4: 0x2005,
	0x0aa5: 0x2007, 0x0aa6: 0x2008, 0x0aa7: 0x2009, 0x0aa8: 0x200a,
	0x0aa9: 0x2014, 0x0aaa: 0x2013, 0x0aae: 0x2026, 0x0aaf: 0x2025,
	0x0ab0: 0x2153, 0x0ab1: 0x2154, 0x0ab2: 0x2155, 0x0ab3: 0x2156,
	0x0ab4: 0x2157, 0x0ab5: 0x2158, 0x0ab6: 0x2159, 0x0ab7: 0x215a,
	0x0ab8: 0x2105, 0x0abb: 0x2012, 0x0ac3: 0x215b, 0x0ac4: 0x215c,
	0x0ac5: 0x215d, 0x0ac6: 0x215e, 0x0ac9: 0x2122, 0x0ad0: 0x2018,
	0x0ad1: 0x2019, 0x0ad2: 0x201c, 0x0ad3: 0x201d, 0x0ad4: 0x211e,
	0x0ad6: 0x2032, 0x0ad7: 0x2033, 0x0ad9: 0x271d, 0x0aec: 0x2663,
	0x0aed: 0x2666, 0x0aee: 0x2665, 0x0af0: 0x2720, 0x0af1: 0x2020,
	0x0af2: 0x2021, 0x0af3: 0x2713, 0x0af4: 0x2717, 0x0af5: 0x266f,
	0x0af6: 0x266d, 0x0af7: 0x2642, 0x0af8: 0x2640, 0x0af9: 0x260e,
	0x0afa: 0x2315, 0x0afb: 0x2117, 0x0afc: 0x2038, 0x0afd: 0x201a,
	0x0afe: 0x201e,

	// APL
	0x0ba3: 0x003c, 0x0ba6: 0x003e, 0x0ba8: 0x2228, 0x0ba9: 0x2227,
	0x0bc0: 0x00af, 0x0bc2: 0x22a4, 0x0bc3: 0x2229, 0x0bc4: 0x230a,
	0x0bc6: 0x005f, 0x0bca: 0x2218, 0x0bcc: 0x2395, 0x0bce: 0x22a5,
	0x0bcf: 0x25cb, 0x0bd3: 0x2308, 0x0bd6: 0x222a, 0x0bd8: 0x2283,
	0x0bda: 0x2282, 0x0bdc: 0x22a2, 0x0bfc: 0x22a3,

	// Hebrew
	0x0cdf: 0x2017,

	// Korean
	0x0eef: 0x316d, 0x0ef0: 0x3171, 0x0ef1: 0x3178, 0x0ef2: 0x317f,
	0x0ef3: 0x3181, 0x0ef4: 0x3184, 0x0ef5: 0x3186, 0x0ef6: 0x318d,
	0x0ef7: 0x318e, 0x0ef8: 0x11eb, 0x0ef9: 0x11f0, 0x0efa: 0x11f9,
	0x0eff: 0x20a9,

	// Latin-9
	0x13bc: 0x0152, 0x13bd: 0x0153, 0x13be: 0x0178,
}

// legacyToUTF32 returns the code point of a legacy keysym, or 0.
func legacyToUTF32(ks uint32) uint32 {
	if cp, ok := legacySingles[ks]; ok {
		return cp
	}
	if ks >= 0x06c0 && ks <= 0x06ff {
		cp := cyrillicKOI8[ks&0x1f]
		if ks >= 0x06e0 {
			cp -= 0x20
		}
		return cp
	}
	for _, s := range legacySpans {
		if ks >= s.first && ks <= s.last {
			return s.cp + ks - s.first
		}
	}
	return 0
}

// legacyFromUTF32 maps code points at or above 0x100 back to the lowest
// legacy keysym producing them.
var legacyFromUTF32 = func() map[uint32]uint32 {
	m := make(map[uint32]uint32)
	add := func(ks, cp uint32) {
		if cp < 0x100 {
			return
		}
		if prev, ok := m[cp]; !ok || ks < prev {
			m[cp] = ks
		}
	}
	for ks, cp := range legacySingles {
		add(ks, cp)
	}
	for ks := uint32(0x06c0); ks <= 0x06ff; ks++ {
		add(ks, legacyToUTF32(ks))
	}
	for _, s := range legacySpans {
		for ks := s.first; ks <= s.last; ks++ {
			add(ks, s.cp+ks-s.first)
		}
	}
	return m
}()
