// Package tokenizer implements the uncased BERT WordPiece tokenizer used by
// DistilBERT-family sequence classifiers.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Special tokens every BERT vocabulary carries.
const (
	PadToken       = "[PAD]"
	UnknownToken   = "[UNK]"
	ClassToken     = "[CLS]"
	SeparatorToken = "[SEP]"
)

// DefaultMaxLength is the longest sequence, [CLS] and [SEP] included, that
// DistilBERT position embeddings cover.
const DefaultMaxLength = 512

// maxWordRunes is the longest basic token WordPiece attempts to decompose.
const maxWordRunes = 200

// Encoding is a single tokenized text: [CLS] tokens... [SEP], unpadded.
type Encoding struct {
	IDs           []int64
	AttentionMask []int64
	TypeIDs       []int64
}

// Len returns the number of real tokens, specials included.
func (e Encoding) Len() int {
	return len(e.IDs)
}

// Batch holds one or more encodings packed into flat [Size * SeqLen] slices
// padded to the longest sequence, ready to back inference tensors.
type Batch struct {
	InputIDs      []int64
	AttentionMask []int64
	TokenTypeIDs  []int64
	Size          int64
	SeqLen        int64
}

// Tokenizer performs BERT-style basic tokenization followed by WordPiece.
// It is read-only after Load and safe for concurrent use.
type Tokenizer struct {
	vocab  *vocab
	maxLen int
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithMaxLength caps encodings at n tokens, [CLS] and [SEP] included.
// Values below 2 are ignored.
func WithMaxLength(n int) Option {
	return func(t *Tokenizer) {
		if n >= 2 {
			t.maxLen = n
		}
	}
}

// Load creates a Tokenizer from a vocab.txt file.
func Load(vocabPath string, opts ...Option) (*Tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{vocab: v, maxLen: DefaultMaxLength}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// VocabSize returns the number of entries in the vocabulary.
func (t *Tokenizer) VocabSize() int {
	return t.vocab.size()
}

// Tokens splits text into WordPiece tokens without specials or truncation.
func (t *Tokenizer) Tokens(text string) []string {
	return t.wordpiece(basicTokenize(text))
}

// Encode converts text into token IDs wrapped in [CLS] and [SEP], truncated
// so the whole sequence fits the configured maximum length.
func (t *Tokenizer) Encode(text string) Encoding {
	tokens := t.Tokens(text)
	if maxTokens := t.maxLen - 2; len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}

	n := len(tokens) + 2
	enc := Encoding{
		IDs:           make([]int64, n),
		AttentionMask: make([]int64, n),
		TypeIDs:       make([]int64, n), // single segment, all zeros
	}
	enc.IDs[0] = t.vocab.clsID
	for i, tok := range tokens {
		enc.IDs[i+1] = t.vocab.lookup(tok)
	}
	enc.IDs[n-1] = t.vocab.sepID
	for i := range enc.AttentionMask {
		enc.AttentionMask[i] = 1
	}
	return enc
}

// EncodeBatch encodes multiple texts and packs them into flat slices padded
// with [PAD] to the longest sequence in the batch.
func (t *Tokenizer) EncodeBatch(texts []string) Batch {
	if len(texts) == 0 {
		return Batch{}
	}

	encs := make([]Encoding, len(texts))
	seqLen := 0
	for i, text := range texts {
		encs[i] = t.Encode(text)
		if encs[i].Len() > seqLen {
			seqLen = encs[i].Len()
		}
	}

	total := len(texts) * seqLen
	b := Batch{
		InputIDs:      make([]int64, total),
		AttentionMask: make([]int64, total),
		TokenTypeIDs:  make([]int64, total),
		Size:          int64(len(texts)),
		SeqLen:        int64(seqLen),
	}
	for i, enc := range encs {
		row := i * seqLen
		copy(b.InputIDs[row:], enc.IDs)
		copy(b.AttentionMask[row:], enc.AttentionMask)
		for j := enc.Len(); j < seqLen; j++ {
			b.InputIDs[row+j] = t.vocab.padID
		}
	}
	return b
}

// basicTokenize applies BERT's BasicTokenizer: clean, split CJK, lowercase,
// strip accents, then split on whitespace and punctuation.
func basicTokenize(text string) []string {
	text = cleanText(text)
	text = tokenizeChineseChars(text)
	text = strings.ToLower(text)
	text = stripAccents(text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, splitOnPunctuation(word)...)
	}
	return tokens
}

func (t *Tokenizer) wordpiece(words []string) []string {
	var out []string
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, t.wordpieceWord(w)...)
	}
	return out
}

// wordpieceWord greedily takes the longest vocabulary prefix, marking
// continuations with "##". A word with any undecomposable remainder maps to
// a single [UNK].
func (t *Tokenizer) wordpieceWord(word string) []string {
	runes := []rune(word)
	if len(runes) > maxWordRunes {
		return []string{UnknownToken}
	}

	var pieces []string
	for start := 0; start < len(runes); {
		end := len(runes)
		var piece string
		for ; end > start; end-- {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if t.vocab.contains(sub) {
				piece = sub
				break
			}
		}
		if piece == "" {
			return []string{UnknownToken}
		}
		pieces = append(pieces, piece)
		start = end
	}
	return pieces
}

// cleanText drops NUL, U+FFFD and control characters and maps whitespace to
// plain spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == 0 || r == unicode.ReplacementChar || isControl(r):
		case isWhitespace(r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tokenizeChineseChars surrounds CJK ideographs with spaces so each becomes
// its own token.
func tokenizeChineseChars(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for _, r := range text {
		if isChineseChar(r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func splitOnPunctuation(word string) []string {
	var tokens []string
	start := -1
	for i, r := range word {
		if !isPunctuation(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, word[start:i])
			start = -1
		}
		tokens = append(tokens, string(r))
	}
	if start >= 0 {
		tokens = append(tokens, word[start:])
	}
	return tokens
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r) || unicode.In(r, unicode.Cf)
}

// isPunctuation treats all non-alphanumeric ASCII symbols as punctuation,
// matching BERT, plus the Unicode P* categories.
func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

// isChineseChar covers the CJK Unified Ideograph blocks BERT splits on.
// Hangul and kana are not in these blocks.
func isChineseChar(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x2A700 && r <= 0x2B73F) ||
		(r >= 0x2B740 && r <= 0x2B81F) ||
		(r >= 0x2B820 && r <= 0x2CEAF) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0x2F800 && r <= 0x2FA1F)
}
