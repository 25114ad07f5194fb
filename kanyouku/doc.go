// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kanyouku implements reading and searching a dictionary of Japanese
// idioms (慣用句).
//
// An idiom document is XML made up of repeating definition elements:
//
//	<definition id="1">
//	  <phrase furigana="あたまがあがらない" variant="intransitive">頭が上がらない</phrase>
//	  <sense>
//	    <meaning>...</meaning>
//	    <example>...</example>
//	  </sense>
//	  <synonym>...</synonym>
//	  <see-also>...</see-also>
//	</definition>
//
// The variant attribute is one of "transitive" or "intransitive". Any other
// value leaves the phrase's Mode undefined.
package kanyouku
