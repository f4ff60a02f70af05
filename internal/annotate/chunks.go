package annotate

// NounChunks extracts flat noun phrases. A chunk starts at a NOUN or PROPN
// (an optional leading determiner is skipped), absorbs following adjectives,
// and may continue across "de"/"en" into another noun group, so
// "gestión de proyectos de software" comes out as one chunk. The root is the
// first noun of the chunk.
func (d *Doc) NounChunks() []Chunk {
	var chunks []Chunk
	toks := d.Tokens

	i := 0
	for i < len(toks) {
		if !isChunkStart(toks[i]) {
			i++
			continue
		}

		start := i
		var root *Token
		j := i

		for j < len(toks) {
			// noun group: NOUN/PROPN+ followed by ADJ*
			if !isChunkStart(toks[j]) {
				break
			}
			for j < len(toks) && isChunkStart(toks[j]) {
				if root == nil {
					root = &toks[j]
				}
				j++
			}
			for j < len(toks) && toks[j].POS == POSAdj {
				j++
			}

			// optionally bridge over a bare "de"/"del"/"en" into the next group;
			// "de la X" stays a separate chunk
			k := j
			if k < len(toks) && isBridge(toks[k]) {
				k++
				if k < len(toks) && isChunkStart(toks[k]) {
					j = k
					continue
				}
			}
			break
		}

		if root != nil {
			chunks = append(chunks, Chunk{
				Tokens: append([]Token(nil), toks[start:j]...),
				Root:   *root,
			})
		}
		if j > i {
			i = j
		} else {
			i++
		}
	}
	return chunks
}

func isChunkStart(t Token) bool {
	return t.POS == POSNoun || t.POS == POSProp
}

func isBridge(t Token) bool {
	if t.POS != POSAdp {
		return false
	}
	switch Fold(t.Lower) {
	case "de", "del", "en":
		return true
	}
	return false
}
