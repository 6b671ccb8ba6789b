package scene

// Selection is the ordered set of currently selected object ids. The store
// prunes it when an object is deleted so it never holds a stale id.
type Selection struct {
	ids []string
}

func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}

func (s *Selection) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Selection) IsEmpty() bool { return len(s.ids) == 0 }

// Set replaces the selection. Returns false when nothing changed.
func (s *Selection) Set(ids ...string) bool {
	if len(ids) == len(s.ids) {
		same := true
		for i := range ids {
			if ids[i] != s.ids[i] {
				same = false
				break
			}
		}
		if same {
			return false
		}
	}
	s.ids = append([]string(nil), ids...)
	return true
}

func (s *Selection) Clear() bool { return s.Set() }

func (s *Selection) remove(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}
