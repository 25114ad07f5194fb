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

// Package jmdict implements reading and searching the JMdict
// Japanese-English dictionary.
//
// A JMdict document is XML made up of repeating entry elements:
//
//	<entry>
//	  <ent_seq>1000000</ent_seq>
//	  <k_ele><keb>保気</keb></k_ele>
//	  <r_ele><reb>ほげ</reb></r_ele>
//	  <sense><gloss>hoge</gloss></sense>
//	</entry>
//
// Only the sequence number (ent_seq), written forms (keb), readings (reb) and
// glosses of each sense are read. Other elements are ignored.
//
// More info on the dictionary can be found at this URL:
// https://www.edrdg.org/jmdict/j_jmdict.html
package jmdict
