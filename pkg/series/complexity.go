package series

// NodeCount returns the number of nodes reachable from s, counting a shared
// operand once per reference.
func (s *Series) NodeCount() int {
	if s.left == nil {
		return 1
	}
	return 1 + s.left.NodeCount() + s.right.NodeCount()
}

// Depth returns the length of the longest operand chain below s, including s.
func (s *Series) Depth() int {
	if s.left == nil {
		return 1
	}
	ld := s.left.Depth()
	rd := s.right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
