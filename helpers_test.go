package pathdata

import "math/rand"

func randomPath(n int, closed bool) Path {
	cmds := []Command{}
	if 0 < n {
		cmds = append(cmds, MoveToCmd(rand.NormFloat64(), rand.NormFloat64()))
		for i := 1; i < n; i++ {
			var cmd Command
			switch rand.Intn(9) {
			case 0:
				cmd = LineToCmd(rand.NormFloat64(), rand.NormFloat64())
			case 1:
				cmd = HLineToCmd(rand.NormFloat64())
			case 2:
				cmd = VLineToCmd(rand.NormFloat64())
			case 3:
				cmd = QuadToCmd(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 4:
				cmd = SmoothQuadToCmd(rand.NormFloat64(), rand.NormFloat64())
			case 5:
				cmd = CubeToCmd(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 6:
				cmd = SmoothCubeToCmd(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 7:
				large, sweep := rand.Intn(2) == 0, rand.Intn(2) == 0
				cmd = ArcToCmd(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), large, sweep, rand.NormFloat64(), rand.NormFloat64())
			case 8:
				cmd = MoveToCmd(rand.NormFloat64(), rand.NormFloat64())
			}
			if rand.Intn(2) == 0 {
				cmd = cmd.Rel()
			}
			cmds = append(cmds, cmd)
		}
		if closed {
			cmds = append(cmds, CloseCmd())
		}
	}
	return New(cmds...)
}
