package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		data string
		want Command
	}{
		{"tpl:manually", Command{Kind: KindTemplateManually}},
		{"tpl:from_past", Command{Kind: KindTemplateFromPast}},
		{"tpl:main_menu", Command{Kind: KindTemplateMainMenu}},
		{"tpl:rename", Command{Kind: KindTemplateRename}},
		{"tpl:add_ex", Command{Kind: KindTemplateAddExercise}},
		{"tpl:add_set", Command{Kind: KindTemplateAddSetMenu}},
		{"tpl:back", Command{Kind: KindTemplateBack}},
		{"tpl:save", Command{Kind: KindTemplateSave}},
		{"tpl:discard", Command{Kind: KindTemplateDiscard}},
		{"tpl:delete", Command{Kind: KindTemplateDelete}},

		{"tpl:pick:17", Command{Kind: KindTemplatePickWorkout, ID: 17}},
		{"tpl:mng_tpl:5", Command{Kind: KindTemplateManage, ID: 5}},
		{"tpl:add_set_to_ex:2", Command{Kind: KindTemplateAddSetToExercise, Index: 2}},
		{"tpl:ex_set_to_remove:1", Command{Kind: KindTemplatePickSetToRemove, Index: 1}},
		{"tpl:remove_set:1:3", Command{Kind: KindTemplateRemoveSet, Index: 1, SetIndex: 3}},

		{"stats:get_workout:42", Command{Kind: KindStatsGetWorkout, ID: 42}},
		{"stats:load_more:10", Command{Kind: KindStatsLoadMore, Offset: 10}},

		{"", Command{Kind: KindUnknown}},
		{"noop", Command{Kind: KindUnknown}},
		{"tpl:pick:abc", Command{Kind: KindUnknown}},
		{"tpl:remove_set:1", Command{Kind: KindUnknown}},
		{"stats:get_workout:", Command{Kind: KindUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.data))
		})
	}
}

// Без индекса data это меню выбора, с индексом - действие над элементом
func TestParseDistinguishesMenuFromAction(t *testing.T) {
	assert.Equal(t, KindTemplateRemoveExerciseMenu, Parse("tpl:remove_ex").Kind)
	assert.Equal(t, KindTemplateRemoveExercise, Parse("tpl:remove_ex:0").Kind)
	assert.Equal(t, KindTemplateRemoveSetMenu, Parse("tpl:remove_set").Kind)
	assert.Equal(t, KindTemplateRemoveSet, Parse("tpl:remove_set:0:0").Kind)
}
