package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/services/common"
)

// AllowCommandChannel adds a channel to a command's allow-list. Admin only.
func AllowCommandChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	command := opts["command"].StringValue()
	channel := opts["channel"].ChannelValue(s)

	added, err := deps.Guilds.AddCommandChannel(i.GuildID, command, channel.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !added {
		common.RespondEphemeral(s, i, fmt.Sprintf("/%s is already allowed in <#%s>.", command, channel.ID))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("/%s is now allowed in <#%s>.", command, channel.ID))
}

// DenyCommandChannel removes a channel from a command's allow-list. Admin
// only. Emptying the list re-allows the command everywhere.
func DenyCommandChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	command := opts["command"].StringValue()
	channel := opts["channel"].ChannelValue(s)

	removed, err := deps.Guilds.RemoveCommandChannel(i.GuildID, command, channel.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !removed {
		common.RespondEphemeral(s, i, fmt.Sprintf("<#%s> was not on /%s's allow-list.", channel.ID, command))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Removed <#%s> from /%s's allow-list.", channel.ID, command))
}

// AddNoRewardChannel stops messages in a channel from earning coins. Admin
// only.
func AddNoRewardChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	channel := optionMap(i)["channel"].ChannelValue(s)
	added, err := deps.Guilds.AddNoRewardChannel(i.GuildID, channel.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !added {
		common.RespondEphemeral(s, i, fmt.Sprintf("<#%s> already earns no rewards.", channel.ID))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Messages in <#%s> will no longer earn coins.", channel.ID))
}

// RemoveNoRewardChannel lets messages in a channel earn coins again. Admin
// only.
func RemoveNoRewardChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	channel := optionMap(i)["channel"].ChannelValue(s)
	removed, err := deps.Guilds.RemoveNoRewardChannel(i.GuildID, channel.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !removed {
		common.RespondEphemeral(s, i, fmt.Sprintf("<#%s> was not on the no-reward list.", channel.ID))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Messages in <#%s> earn coins again.", channel.ID))
}

// SetLogChannel designates the channel for admin action audit lines. Admin
// only.
func SetLogChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	channel := optionMap(i)["channel"].ChannelValue(s)
	if err := deps.Guilds.SetLogChannel(i.GuildID, channel.ID); err != nil {
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Admin actions will be logged to <#%s>.", channel.ID))
}

// AddPermissionRole grants a role admin or moderator rights. Admin only.
func AddPermissionRole(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	tier := opts["tier"].StringValue()
	role := opts["role"].RoleValue(s, i.GuildID)

	added, err := deps.Guilds.AddRole(i.GuildID, tier, role.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !added {
		common.RespondEphemeral(s, i, fmt.Sprintf("<@&%s> already has %s rights.", role.ID, tier))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("<@&%s> now has %s rights.", role.ID, tier))
	common.NotifyLogChannel(s, deps.Guilds, i.GuildID,
		fmt.Sprintf("<@%s> granted %s rights to <@&%s>.", i.Member.User.ID, tier, role.ID))
}

// RemovePermissionRole revokes a role's admin or moderator rights. Admin
// only.
func RemovePermissionRole(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	tier := opts["tier"].StringValue()
	role := opts["role"].RoleValue(s, i.GuildID)

	removed, err := deps.Guilds.RemoveRole(i.GuildID, tier, role.ID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !removed {
		common.RespondEphemeral(s, i, fmt.Sprintf("<@&%s> did not have %s rights.", role.ID, tier))
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Revoked %s rights from <@&%s>.", tier, role.ID))
	common.NotifyLogChannel(s, deps.Guilds, i.GuildID,
		fmt.Sprintf("<@%s> revoked %s rights from <@&%s>.", i.Member.User.ID, tier, role.ID))
}
