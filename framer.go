// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ionhash

// Frame returns the canonical envelope of a single value:
//
//	BeginMarker || tag || escape(body) || EndMarker
func Frame(tag Tag, body []byte) []byte {
	ret := make([]byte, 0, len(body)+4)
	ret = append(ret, BeginMarker, byte(tag))
	ret = appendEscaped(ret, body)
	return append(ret, EndMarker)
}

// FrameAnnotated wraps the framed bytes of a value together with the digests of
// its annotations, in declaration order:
//
//	BeginMarker || AnnotationWrapperTag || escape(d1) || ... || escape(dn) || inner || EndMarker
//
// inner is already framed, so it is copied verbatim
func FrameAnnotated(annotationDigests [][]byte, inner []byte) []byte {
	size := len(inner) + 3
	for _, digest := range annotationDigests {
		size += len(digest)
	}
	ret := make([]byte, 0, size)
	ret = append(ret, BeginMarker, byte(AnnotationWrapperTag))
	for _, digest := range annotationDigests {
		ret = appendEscaped(ret, digest)
	}
	ret = append(ret, inner...)
	return append(ret, EndMarker)
}

// appendEscaped appends body to dst, prefixing every reserved byte with EscapeByte
func appendEscaped(dst []byte, body []byte) []byte {
	for _, b := range body {
		switch b {
		case BeginMarker, EscapeByte, EndMarker:
			dst = append(dst, EscapeByte, b)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
