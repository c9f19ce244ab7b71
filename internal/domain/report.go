package domain

import (
	"gpifab.dev/pkg/gpifab/internal/domain/codec"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// BuildReport decodes every descriptor of model into a printable report.
func BuildReport(source m.Path, model m.ConfigModel) m.Report {
	report := m.Report{
		Source:    source,
		NumStates: model.NumStates,
		States:    make([]string, len(model.States)),
		Positions: append([]int{}, model.Positions...),
		Slots:     make([]m.SlotReport, len(model.Wavedata)),
	}

	for i := range model.States {
		report.States[i] = model.DisplayStateName(i)
	}

	for i, slot := range model.Wavedata {
		states := model.SlotStates(i)

		names := make([]string, len(states))
		for j, state := range states {
			names[j] = model.DisplayStateName(state)
		}

		report.Slots[i] = m.SlotReport{
			Index:  i,
			Raw:    [2]string{slot.Left.String(), slot.Right.String()},
			States: names,
			Left:   buildTransitionReport(&model, slot.Left),
			Right:  buildTransitionReport(&model, slot.Right),
		}
	}

	return report
}

func buildTransitionReport(model *m.ConfigModel, r m.Register) *m.TransitionReport {
	transition, ok := codec.Unpack(r)
	if !ok {
		return nil
	}

	report := &m.TransitionReport{
		RepeatCount: transition.RepeatCount,
		Beta:        codec.OnBits(uint64(transition.Beta)),
		AlphaRight:  codec.OnBits(uint64(transition.AlphaRight)),
		AlphaLeft:   codec.OnBits(uint64(transition.AlphaLeft)),
		F1:          transition.F1,
		F0:          transition.F0,
		Fd:          transition.Fd,
		Fc:          transition.Fc,
		Fb:          transition.Fb,
		Fa:          transition.Fa,
		NextState:   transition.NextState,
	}

	if name, ok := model.StateName(int(transition.NextState)); ok {
		report.NextStateName = name
	}

	if transition.BetaDeassert {
		report.BetaDeassert = 1
	}

	return report
}
