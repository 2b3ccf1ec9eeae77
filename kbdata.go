package sandhika

// DefaultSandhiRules is the packaged 130-rule Paninian sandhi table,
// transcribed from the four rule families in
// _examples/original_source/vedic_tokenizer/sandhi_rules.py: vowel sandhi
// (VS, savarna dīrgha / guṇa / vṛddhi / yaṇ), consonant sandhi (CS, jhal-jaś
// voicing and anusvāra-before-consonant), visarga sandhi (VIS), and the
// special/Vedic table (SP, pragṛhya exceptions, lopa, samprasāraṇa, prefix
// sandhi and Vedic-only gemination/accent rules). Every rule carries both
// directions.
var DefaultSandhiRules = []SandhiRule{
	// --- Vowel sandhi: savarna dīrgha (6.1.101) ---
	{ID: "VS01", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "अ", Result: "आ", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS02", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "अ", Result: "आ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS03", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "आ", Result: "आ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS04", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "आ", Result: "आ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS05", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "इ", Result: "ई", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS06", Category: CategoryVowel, LeftPattern: "ई", RightPattern: "इ", Result: "ई", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS07", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "उ", Result: "ऊ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.101"},
	{ID: "VS08", Category: CategoryVowel, LeftPattern: "ऊ", RightPattern: "उ", Result: "ऊ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.101"},

	// --- Vowel sandhi: guṇa (6.1.87) ---
	{ID: "VS09", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "इ", Result: "ए", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS10", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "इ", Result: "ए", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS11", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ई", Result: "ए", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS12", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ई", Result: "ए", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS13", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "उ", Result: "ओ", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS14", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "उ", Result: "ओ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS15", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऊ", Result: "ओ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS16", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ऊ", Result: "ओ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS17", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऋ", Result: "अर्", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.87"},
	{ID: "VS18", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ऋ", Result: "अर्", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.87"},

	// --- Vowel sandhi: vṛddhi (6.1.88) ---
	{ID: "VS19", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ए", Result: "ऐ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.88"},
	{ID: "VS20", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ए", Result: "ऐ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.88"},
	{ID: "VS21", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ऐ", Result: "ऐ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.88"},
	{ID: "VS22", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "ओ", Result: "औ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.88"},
	{ID: "VS23", Category: CategoryVowel, LeftPattern: "आ", RightPattern: "ओ", Result: "औ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.88"},
	{ID: "VS24", Category: CategoryVowel, LeftPattern: "अ", RightPattern: "औ", Result: "औ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.88"},

	// --- Vowel sandhi: yaṇ (6.1.77) ---
	{ID: "VS25", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "अ", Result: "य", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS26", Category: CategoryVowel, LeftPattern: "ई", RightPattern: "अ", Result: "य", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS27", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "अ", Result: "व", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS28", Category: CategoryVowel, LeftPattern: "ऊ", RightPattern: "अ", Result: "व", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS29", Category: CategoryVowel, LeftPattern: "ऋ", RightPattern: "अ", Result: "र", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS30", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "आ", Result: "या", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS31", Category: CategoryVowel, LeftPattern: "इ", RightPattern: "उ", Result: "यु", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS32", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "आ", Result: "वा", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.77"},
	{ID: "VS33", Category: CategoryVowel, LeftPattern: "उ", RightPattern: "इ", Result: "वि", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.77"},

	// --- Consonant sandhi: jhal-jaś voicing ---
	{ID: "CS01", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "ग", Result: "ग्ग", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.40"},
	{ID: "CS02", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "च", Result: "च्च", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.4.40"},
	{ID: "CS03", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "श", Result: "च्छ", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.4.40"},
	{ID: "CS04", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "ध", Result: "द्ध", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.40"},
	{ID: "CS05", Category: CategoryConsonant, LeftPattern: "र्", RightPattern: "न", Result: "र्ण", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.1"},
	{ID: "CS06", Category: CategoryConsonant, LeftPattern: "ष्", RightPattern: "न", Result: "ष्ण", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.1"},
	{ID: "CS07", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ह", Result: "द्ध", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.40"},

	// --- Consonant sandhi: anusvāra before every consonant (8.3.23) ---
	{ID: "CS08", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "क", Result: "ंक", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS09", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ख", Result: "ंख", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS10", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ग", Result: "ंग", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS11", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "घ", Result: "ंघ", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS12", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ङ", Result: "ंङ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS13", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "च", Result: "ंच", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS14", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "छ", Result: "ंछ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS15", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ज", Result: "ंज", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS16", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "झ", Result: "ंझ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS17", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ञ", Result: "ंञ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS18", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ट", Result: "ंट", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS19", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ठ", Result: "ंठ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS20", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ड", Result: "ंड", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS21", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ढ", Result: "ंढ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS22", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ण", Result: "ंण", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS23", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "त", Result: "ंत", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS24", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "थ", Result: "ंथ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS25", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "द", Result: "ंद", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS26", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ध", Result: "ंध", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS27", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "न", Result: "ंन", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS28", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "प", Result: "ंप", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS29", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "फ", Result: "ंफ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS30", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ब", Result: "ंब", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS31", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "भ", Result: "ंभ", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS32", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "य", Result: "ंय", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS33", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "र", Result: "ंर", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS34", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ल", Result: "ंल", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS35", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "व", Result: "ंव", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},
	{ID: "CS36", Category: CategoryConsonant, LeftPattern: "म्", RightPattern: "ह", Result: "ंह", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.23"},

	// --- Consonant sandhi: additional assimilations ---
	{ID: "CS37", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ल", Result: "ल्ल", Priority: 8, Directions: DirForward | DirReverse},
	{ID: "CS38", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "त", Result: "त्त", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS39", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "क", Result: "क्क", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS40", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "ध", Result: "द्ध", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.53"},
	{ID: "CS41", Category: CategoryConsonant, LeftPattern: "क्", RightPattern: "घ", Result: "ग्घ", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS42", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "त", Result: "स्त", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS43", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "क", Result: "स्क", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS44", Category: CategoryConsonant, LeftPattern: "न्", RightPattern: "त", Result: "न्त", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS45", Category: CategoryConsonant, LeftPattern: "न्", RightPattern: "द", Result: "न्द", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS46", Category: CategoryConsonant, LeftPattern: "स्", RightPattern: "च", Result: "श्च", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.4.44"},
	{ID: "CS47", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "व", Result: "द्व", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS48", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "य", Result: "द्य", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS49", Category: CategoryConsonant, LeftPattern: "द्", RightPattern: "र", Result: "द्र", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "CS50", Category: CategoryConsonant, LeftPattern: "त्", RightPattern: "स", Result: "त्स", Priority: 6, Directions: DirForward | DirReverse},

	// --- Visarga sandhi: before vowels (6.1.114) ---
	{ID: "VIS01", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "अ", Result: "ओऽ", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS02", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "आ", Result: "ओ", Priority: 10, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS03", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "इ", Result: "ओ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS04", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ई", Result: "ओ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS05", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "उ", Result: "ओ", Priority: 9, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS06", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ऊ", Result: "ओ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS07", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ए", Result: "ओ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.114"},
	{ID: "VIS08", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ओ", Result: "ओ", Priority: 8, Directions: DirForward | DirReverse, Citation: "6.1.114"},

	// --- Visarga sandhi: before consonants ---
	{ID: "VIS09", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "क", Result: "अःक", Priority: 6, Directions: DirForward | DirReverse},
	{ID: "VIS10", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "प", Result: "अःप", Priority: 6, Directions: DirForward | DirReverse},
	{ID: "VIS11", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "च", Result: "अश्च", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.36"},
	{ID: "VIS12", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ट", Result: "अष्ट", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.3.36"},
	{ID: "VIS13", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "त", Result: "अस्त", Priority: 9, Directions: DirForward | DirReverse, Citation: "8.3.37"},

	// --- Visarga sandhi: replacement with र ---
	{ID: "VIS14", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "र", Result: "र", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "VIS15", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "अ", Result: "र", Priority: 6, Directions: DirForward | DirReverse},

	// --- Visarga sandhi: other independent-vowel visarga ---
	{ID: "VIS16", Category: CategoryVisarga, LeftPattern: "इः", RightPattern: "अ", Result: "इर", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "VIS17", Category: CategoryVisarga, LeftPattern: "उः", RightPattern: "अ", Result: "उर", Priority: 7, Directions: DirForward | DirReverse},

	{ID: "VIS18", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "स", Result: "अःस", Priority: 6, Directions: DirForward | DirReverse},
	{ID: "VIS19", Category: CategoryVisarga, LeftPattern: "ः", RightPattern: "स", Result: "स", Priority: 6, Directions: DirForward | DirReverse},
	{ID: "VIS20", Category: CategoryVisarga, LeftPattern: "अः", RightPattern: "ह", Result: "ओह", Priority: 7, Directions: DirForward | DirReverse},

	// --- Special/Vedic: pragṛhya (no sandhi) exceptions ---
	{ID: "SP01", Category: CategorySpecial, LeftPattern: "ई", RightPattern: "अ", Result: "ई", Priority: 10, Directions: DirForward | DirReverse},
	{ID: "SP02", Category: CategorySpecial, LeftPattern: "ऊ", RightPattern: "अ", Result: "ऊ", Priority: 10, Directions: DirForward | DirReverse},
	{ID: "SP03", Category: CategorySpecial, LeftPattern: "ए", RightPattern: "अ", Result: "ए", Priority: 9, Directions: DirForward | DirReverse},

	{ID: "SP04", Category: CategorySpecial, LeftPattern: "ा", RightPattern: "अ", Result: "ा३", Priority: 5, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: lopa (elision) ---
	{ID: "SP05", Category: CategorySpecial, LeftPattern: "अ", RightPattern: "", Result: "", Priority: 6, Directions: DirForward | DirReverse},
	{ID: "SP06", Category: CategorySpecial, LeftPattern: "ए", RightPattern: "अ", Result: "अ", Priority: 5, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: Vedic accent preservation ---
	{ID: "SP07", Category: CategorySpecial, LeftPattern: "॒", RightPattern: "॑", Result: "॒॑", Priority: 5, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: Vedic irregular vowel combinations ---
	{ID: "SP08", Category: CategorySpecial, LeftPattern: "ओ", RightPattern: "इ", Result: "आ", Priority: 4, Directions: DirForward | DirReverse, VedicOnly: true},
	{ID: "SP09", Category: CategorySpecial, LeftPattern: "औ", RightPattern: "उ", Result: "आ", Priority: 4, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: samprasāraṇa ---
	{ID: "SP10", Category: CategorySpecial, LeftPattern: "य", RightPattern: "इ", Result: "इ", Priority: 7, Directions: DirForward | DirReverse},
	{ID: "SP11", Category: CategorySpecial, LeftPattern: "व", RightPattern: "उ", Result: "उ", Priority: 7, Directions: DirForward | DirReverse},

	// --- Special: compound-internal ---
	{ID: "SP12", Category: CategorySpecial, LeftPattern: "म", RightPattern: "ह", Result: "म्ह", Priority: 6, Directions: DirForward | DirReverse},

	// --- Special: pada-final त्/द् assimilation ---
	{ID: "SP13", Category: CategorySpecial, LeftPattern: "त्", RightPattern: "", Result: "त्", Priority: 5, Directions: DirForward | DirReverse},
	{ID: "SP14", Category: CategorySpecial, LeftPattern: "द्", RightPattern: "", Result: "त्", Priority: 8, Directions: DirForward | DirReverse, Citation: "8.4.55"},

	// --- Special: jastva ---
	{ID: "SP15", Category: CategorySpecial, LeftPattern: "क्", RightPattern: "", Result: "क्", Priority: 5, Directions: DirForward | DirReverse, Citation: "8.2.41"},
	{ID: "SP16", Category: CategorySpecial, LeftPattern: "ग्", RightPattern: "स्", Result: "क्स्", Priority: 6, Directions: DirForward | DirReverse},

	// --- Special: nati ---
	{ID: "SP17", Category: CategorySpecial, LeftPattern: "न्", RightPattern: "ष", Result: "ण्ष्", Priority: 7, Directions: DirForward | DirReverse},

	// --- Special: Vedic meter preservation ---
	{ID: "SP18", Category: CategorySpecial, LeftPattern: "ा", RightPattern: "इ", Result: "ै", Priority: 4, Directions: DirForward | DirReverse, VedicOnly: true},
	{ID: "SP19", Category: CategorySpecial, LeftPattern: "ा", RightPattern: "उ", Result: "ौ", Priority: 4, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: prefix sandhi ---
	{ID: "SP20", Category: CategorySpecial, LeftPattern: "उत्", RightPattern: "आ", Result: "उदा", Priority: 8, Directions: DirForward | DirReverse},
	{ID: "SP21", Category: CategorySpecial, LeftPattern: "सम्", RightPattern: "आ", Result: "समा", Priority: 8, Directions: DirForward | DirReverse},

	// --- Special: pada-final unchanged ---
	{ID: "SP22", Category: CategorySpecial, LeftPattern: "त्", RightPattern: "", Result: "त्", Priority: 3, Directions: DirForward | DirReverse},
	{ID: "SP23", Category: CategorySpecial, LeftPattern: "न्", RightPattern: "", Result: "न्", Priority: 3, Directions: DirForward | DirReverse},

	// --- Special: rare/archaic ---
	{ID: "SP24", Category: CategorySpecial, LeftPattern: "ऐ", RightPattern: "अ", Result: "आय", Priority: 3, Directions: DirForward | DirReverse, VedicOnly: true},
	{ID: "SP25", Category: CategorySpecial, LeftPattern: "औ", RightPattern: "अ", Result: "आव", Priority: 3, Directions: DirForward | DirReverse, VedicOnly: true},

	// --- Special: Vedic gemination ---
	{ID: "SP26", Category: CategorySpecial, LeftPattern: "स्", RightPattern: "स्", Result: "स्स्", Priority: 3, Directions: DirForward | DirReverse, VedicOnly: true},
	{ID: "SP27", Category: CategorySpecial, LeftPattern: "द्", RightPattern: "द्", Result: "द्द्", Priority: 3, Directions: DirForward | DirReverse, VedicOnly: true},
}

// DefaultInflectionPatterns is the packaged 160-pattern vibhakti (case
// ending) table, transcribed from the nine declension-class builders in
// _examples/original_source/vedic_tokenizer/vibhakti_analyzer.py.
var DefaultInflectionPatterns = []InflectionPattern{
	// A-stem masculine (राम-type)
	{Ending: "ः", Case: CaseNominative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "म्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ेन", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ाय", Case: CaseDative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ात्", Case: CaseAblative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "स्य", Case: CaseGenitive, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "े", Case: CaseLocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "", Case: CaseVocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ौ", Case: CaseNominative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ौ", Case: CaseAccusative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ाभ्याम्", Case: CaseInstrumental, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseDative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseAblative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "योः", Case: CaseGenitive, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "योः", Case: CaseLocative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ौ", Case: CaseVocative, Number: NumberDual, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ाः", Case: CaseNominative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ान्", Case: CaseAccusative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ैः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ेभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ेभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ानाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 10},
	{Ending: "ेषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 9},
	{Ending: "ाः", Case: CaseVocative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemA, Priority: 9},

	// Ā-stem feminine (रमा-type)
	{Ending: "ा", Case: CaseNominative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ाम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "या", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ायै", Case: CaseDative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ायाः", Case: CaseAblative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ायाः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ायाम्", Case: CaseLocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "े", Case: CaseVocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "े", Case: CaseNominative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "े", Case: CaseAccusative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "ाभ्याम्", Case: CaseInstrumental, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseDative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseAblative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "योः", Case: CaseGenitive, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "योः", Case: CaseLocative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "े", Case: CaseVocative, Number: NumberDual, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "ाः", Case: CaseNominative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "ाः", Case: CaseAccusative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "ाभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ाभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ाभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ानाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 10},
	{Ending: "ासु", Case: CaseLocative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},
	{Ending: "ाः", Case: CaseVocative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemAA, Priority: 9},

	// A-stem neuter (फल-type)
	{Ending: "म्", Case: CaseNominative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "म्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ेन", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ाय", Case: CaseDative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ात्", Case: CaseAblative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "स्य", Case: CaseGenitive, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "े", Case: CaseLocative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "", Case: CaseVocative, Number: NumberSingular, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "े", Case: CaseNominative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "े", Case: CaseAccusative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "ाभ्याम्", Case: CaseInstrumental, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseDative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ाभ्याम्", Case: CaseAblative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "योः", Case: CaseGenitive, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "योः", Case: CaseLocative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "े", Case: CaseVocative, Number: NumberDual, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "ानि", Case: CaseNominative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ानि", Case: CaseAccusative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ैः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "ेभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ेभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ानाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},
	{Ending: "ेषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 9},
	{Ending: "ानि", Case: CaseVocative, Number: NumberPlural, Gender: GenderNeuter, StemClass: StemA, Priority: 10},

	// I-stem masculine (कवि-type)
	{Ending: "िः", Case: CaseNominative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "िम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "िना", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "ये", Case: CaseDative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "ेः", Case: CaseAblative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "ेः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "ौ", Case: CaseLocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "े", Case: CaseVocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "यः", Case: CaseNominative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "ीन्", Case: CaseAccusative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 9},
	{Ending: "िभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "िभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "िभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "ीनाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 10},
	{Ending: "िषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemI, Priority: 9},

	// Ī-stem feminine (नदी-type)
	{Ending: "ी", Case: CaseNominative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ीम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "या", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "यै", Case: CaseDative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "याः", Case: CaseAblative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "याः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "याम्", Case: CaseLocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ि", Case: CaseVocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "यः", Case: CaseNominative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "ीः", Case: CaseAccusative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 9},
	{Ending: "ीभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ीभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ीभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ीनाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 10},
	{Ending: "ीषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemII, Priority: 9},

	// U-stem masculine (गुरु-type)
	{Ending: "ुः", Case: CaseNominative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ुम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ुना", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "वे", Case: CaseDative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ोः", Case: CaseAblative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ोः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ौ", Case: CaseLocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ो", Case: CaseVocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "वः", Case: CaseNominative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ून्", Case: CaseAccusative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 9},
	{Ending: "ुभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ुभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ुभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ूनाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 10},
	{Ending: "ुषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemU, Priority: 9},

	// Ū-stem feminine (वधू-type)
	{Ending: "ूः", Case: CaseNominative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ूम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "वा", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "वै", Case: CaseDative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "वाः", Case: CaseAblative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "वाः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "वाम्", Case: CaseLocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ु", Case: CaseVocative, Number: NumberSingular, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "वः", Case: CaseNominative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "ूः", Case: CaseAccusative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},
	{Ending: "ूभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ूभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ूभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ूनाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 10},
	{Ending: "ूषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderFeminine, StemClass: StemUU, Priority: 9},

	// Ṛ-stem masculine (पितृ-type)
	{Ending: "ा", Case: CaseNominative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "रम्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "रा", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "रे", Case: CaseDative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "ुः", Case: CaseAblative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "ुः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "रि", Case: CaseLocative, Number: NumberSingular, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "रः", Case: CaseNominative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "ॄन्", Case: CaseAccusative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 9},
	{Ending: "ृभिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 10},
	{Ending: "ृभ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 10},
	{Ending: "ृभ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 10},
	{Ending: "ॄणाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 10},
	{Ending: "ृषु", Case: CaseLocative, Number: NumberPlural, Gender: GenderMasculine, StemClass: StemR, Priority: 9},

	// Common consonant stems (simplified, applies across genders)
	{Ending: "्", Case: CaseNominative, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "म्", Case: CaseAccusative, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 8},
	{Ending: "ा", Case: CaseInstrumental, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 8},
	{Ending: "े", Case: CaseDative, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "ः", Case: CaseAblative, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "ः", Case: CaseGenitive, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "ि", Case: CaseLocative, Number: NumberSingular, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "ः", Case: CaseNominative, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "ः", Case: CaseAccusative, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 7},
	{Ending: "भिः", Case: CaseInstrumental, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 9},
	{Ending: "भ्यः", Case: CaseDative, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 9},
	{Ending: "भ्यः", Case: CaseAblative, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 9},
	{Ending: "ाम्", Case: CaseGenitive, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 8},
	{Ending: "सु", Case: CaseLocative, Number: NumberPlural, Gender: GenderAny, StemClass: StemConsonant, Priority: 8},
}

// DefaultDerivationPatterns is the packaged pratyaya (derivational suffix)
// table, transcribed from
// _examples/original_source/vedic_tokenizer/pratyaya_analyzer.py's kṛt,
// taddhita and strī-pratyaya builders.
var DefaultDerivationPatterns = []DerivationPattern{
	// Kṛt: infinitives (तुमुन्)
	{Suffix: "तुम्", Kind: DerivKrt, Category: "infinitive", Priority: 10},
	{Suffix: "तुं", Kind: DerivKrt, Category: "infinitive", Priority: 10},

	// Kṛt: absolutives (क्त्वा, ल्यप्)
	{Suffix: "त्वा", Kind: DerivKrt, Category: "absolutive", Priority: 10},
	{Suffix: "य", Kind: DerivKrt, Category: "absolutive", Priority: 9},
	{Suffix: "त्य", Kind: DerivKrt, Category: "absolutive", Priority: 8},

	// Kṛt: participles
	{Suffix: "त", Kind: DerivKrt, Category: "past_participle", Priority: 10},
	{Suffix: "न", Kind: DerivKrt, Category: "past_participle", Priority: 9},
	{Suffix: "तवत्", Kind: DerivKrt, Category: "past_participle", Priority: 9},
	{Suffix: "अत्", Kind: DerivKrt, Category: "present_participle", Priority: 10},
	{Suffix: "अन्त्", Kind: DerivKrt, Category: "present_participle", Priority: 9},
	{Suffix: "मान", Kind: DerivKrt, Category: "present_participle", Priority: 10},
	{Suffix: "तव्य", Kind: DerivKrt, Category: "future_participle", Priority: 10},
	{Suffix: "अनीय", Kind: DerivKrt, Category: "future_participle", Priority: 10},

	// Kṛt: agent nouns (तृच्, ण्वुल्)
	{Suffix: "तृ", Kind: DerivKrt, Category: "agent_noun", Priority: 10},
	{Suffix: "तार", Kind: DerivKrt, Category: "agent_noun", Priority: 9},
	{Suffix: "अक", Kind: DerivKrt, Category: "agent_noun", Priority: 9},
	{Suffix: "क", Kind: DerivKrt, Category: "agent_noun", Priority: 8},
	{Suffix: "इन्", Kind: DerivKrt, Category: "agent_noun", Priority: 9},
	{Suffix: "उक", Kind: DerivKrt, Category: "agent_noun", Priority: 8},

	// Kṛt: action/instrumental nouns (घञ्, ल्युट्)
	{Suffix: "अन", Kind: DerivKrt, Category: "action_noun", Priority: 9},
	{Suffix: "ति", Kind: DerivKrt, Category: "action_noun", Priority: 9},
	{Suffix: "आ", Kind: DerivKrt, Category: "action_noun", Priority: 8},
	{Suffix: "इष्ठ", Kind: DerivKrt, Category: "instrumental_noun", Priority: 9},

	// Taddhita: abstract nouns (त्व, ता)
	{Suffix: "त्व", Kind: DerivTaddhita, Category: "abstract", Priority: 10},
	{Suffix: "ता", Kind: DerivTaddhita, Category: "abstract", Priority: 10},
	{Suffix: "इमन्", Kind: DerivTaddhita, Category: "abstract", Priority: 9},

	// Taddhita: possessives (मतुप्, वतुप्)
	{Suffix: "मत्", Kind: DerivTaddhita, Category: "possessive", Priority: 10},
	{Suffix: "मान्", Kind: DerivTaddhita, Category: "possessive", Priority: 9},
	{Suffix: "वत्", Kind: DerivTaddhita, Category: "possessive", Priority: 10},
	{Suffix: "वान्", Kind: DerivTaddhita, Category: "possessive", Priority: 9},

	// Taddhita: adjectives
	{Suffix: "इक", Kind: DerivTaddhita, Category: "adjective", Priority: 10},
	{Suffix: "ईय", Kind: DerivTaddhita, Category: "adjective", Priority: 9},
	{Suffix: "मय", Kind: DerivTaddhita, Category: "adjective", Priority: 10},
	{Suffix: "तम", Kind: DerivTaddhita, Category: "adjective", Priority: 9},
	{Suffix: "तर", Kind: DerivTaddhita, Category: "adjective", Priority: 9},
	{Suffix: "ीयस्", Kind: DerivTaddhita, Category: "adjective", Priority: 9},

	// Taddhita: patronymics
	{Suffix: "एय", Kind: DerivTaddhita, Category: "patronymic", Priority: 8},
	{Suffix: "आयन", Kind: DerivTaddhita, Category: "patronymic", Priority: 9},

	// Strī pratyaya: feminine formation
	{Suffix: "इका", Kind: DerivStri, Category: "feminine", Priority: 9},
	{Suffix: "त्री", Kind: DerivStri, Category: "feminine", Priority: 9},
	{Suffix: "इनी", Kind: DerivStri, Category: "feminine", Priority: 9},
	{Suffix: "मती", Kind: DerivStri, Category: "feminine", Priority: 9},
	{Suffix: "वती", Kind: DerivStri, Category: "feminine", Priority: 9},
	{Suffix: "ी", Kind: DerivStri, Category: "feminine", Priority: 8},
}
