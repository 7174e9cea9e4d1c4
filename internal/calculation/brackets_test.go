package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedules_Shape(t *testing.T) {
	schedules := DefaultSchedules()

	for _, s := range []Schedule{schedules.Goods, schedules.Services, schedules.Intellectual} {
		require.Len(t, s.Brackets, ScheduleSize, "schedule %s should have %d brackets", s.Name, ScheduleSize)
		for i := 1; i < len(s.Brackets); i++ {
			assert.True(t, s.Brackets[i].Ceiling.GreaterThan(s.Brackets[i-1].Ceiling),
				"schedule %s ceilings should ascend", s.Name)
		}
	}
}

func TestSchedule_Resolve_FirstBracket(t *testing.T) {
	goods := DefaultSchedules().Goods

	rate, deduction, index := goods.Resolve(decimal.NewFromInt(150000))

	assert.True(t, rate.Equal(decimal.NewFromFloat(0.04)), "nominal rate should be 4%%")
	assert.True(t, deduction.IsZero(), "first bracket has no deduction")
	assert.Equal(t, 1, index)
}

func TestSchedule_Resolve_CeilingIsInclusive(t *testing.T) {
	goods := DefaultSchedules().Goods

	_, _, index := goods.Resolve(decimal.NewFromInt(180000))
	assert.Equal(t, 1, index, "revenue exactly at the ceiling stays in the bracket")

	_, _, index = goods.Resolve(decimal.NewFromFloat(180000.01))
	assert.Equal(t, 2, index)
}

func TestSchedule_Resolve_OpenEndedTopBracket(t *testing.T) {
	goods := DefaultSchedules().Goods

	rate, deduction, index := goods.Resolve(decimal.NewFromInt(10000000))

	last := goods.Brackets[ScheduleSize-1]
	assert.True(t, rate.Equal(last.Rate))
	assert.True(t, deduction.Equal(last.Deduction))
	assert.Equal(t, ScheduleSize, index, "revenue above every ceiling lands in the top bracket")
}

func TestSchedule_Resolve_IndexRangeAndMonotonic(t *testing.T) {
	services := DefaultSchedules().Services

	previous := 0
	for rbt12 := int64(0); rbt12 <= 6000000; rbt12 += 50000 {
		_, _, index := services.Resolve(decimal.NewFromInt(rbt12))
		assert.GreaterOrEqual(t, index, 1)
		assert.LessOrEqual(t, index, ScheduleSize)
		assert.GreaterOrEqual(t, index, previous, "bracket index should never decrease as revenue grows")
		previous = index
	}
}

func TestSchedule_EffectiveRate(t *testing.T) {
	goods := DefaultSchedules().Goods

	// Second bracket: (rbt12*0.073 - 5940) / rbt12.
	rbt12 := decimal.NewFromInt(300000)
	expected := rbt12.Mul(decimal.NewFromFloat(0.073)).Sub(decimal.NewFromInt(5940)).Div(rbt12)
	assert.True(t, goods.EffectiveRate(rbt12).Equal(expected))
}

func TestSchedule_EffectiveRate_ZeroRevenue(t *testing.T) {
	goods := DefaultSchedules().Goods

	assert.True(t, goods.EffectiveRate(decimal.Zero).IsZero(), "zero rolling revenue must not divide")
}
