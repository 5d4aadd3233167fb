package model

import "github.com/ethereum/go-ethereum/common"

// Clone 深拷贝 DAO 记录
// 注册表内的记录只能通过引擎变更，对外返回副本
func (d *DAO) Clone() DAO {
	c := *d

	c.Socials = append([]string(nil), d.Socials...)
	c.Activity = append([]Activity(nil), d.Activity...)
	c.Funding = append([]Funding(nil), d.Funding...)
	c.Vesting = append([]Vesting(nil), d.Vesting...)
	c.UnitsMetaData = append([]UnitMetaData(nil), d.UnitsMetaData...)

	c.Units = make([]Unit, len(d.Units))
	for i, u := range d.Units {
		c.Units[i] = u
		c.Units[i].ChainIDs = append([]string(nil), u.ChainIDs...)
	}

	if d.Deployments != nil {
		c.Deployments = make(Deployments, len(d.Deployments))
		for chainID, byIndex := range d.Deployments {
			m := make(map[ContractIndex]common.Address, len(byIndex))
			for index, address := range byIndex {
				m[index] = address
			}
			c.Deployments[chainID] = m
		}
	}

	if d.ChainSettings != nil {
		c.ChainSettings = make(ChainSettings, len(d.ChainSettings))
		for chainID, s := range d.ChainSettings {
			c.ChainSettings[chainID] = s
		}
	}

	if d.Salts != nil {
		c.Salts = make(map[string]map[ContractIndex]string, len(d.Salts))
		for chainID, byIndex := range d.Salts {
			m := make(map[ContractIndex]string, len(byIndex))
			for index, salt := range byIndex {
				m[index] = salt
			}
			c.Salts[chainID] = m
		}
	}

	return c
}
